/*
 Licensed under the Apache License, Version 2.0 (the "License");
 you may not use this file except in compliance with the License.
 You may obtain a copy of the License at

     https://www.apache.org/licenses/LICENSE-2.0

 Unless required by applicable law or agreed to in writing, software
 distributed under the License is distributed on an "AS IS" BASIS,
 WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 See the License for the specific language governing permissions and
 limitations under the License.
*/

package epoc

const (
	GyroXOffset = 29
	GyroYOffset = 30
	// GyroMidpoint is the raw gyro reading at rest
	GyroMidpoint = 128
)

// Gyro is the head motion delta of one frame
type Gyro struct {
	X int8 `json:"x"`
	Y int8 `json:"y"`
}

// ExtractGyro reads both motion deltas relative to GyroMidpoint
func ExtractGyro(frame *PlaintextFrame) Gyro {
	return Gyro{
		X: int8(int(frame[GyroXOffset]) - GyroMidpoint),
		Y: int8(int(frame[GyroYOffset]) - GyroMidpoint),
	}
}
