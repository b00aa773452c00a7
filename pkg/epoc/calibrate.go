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
	// MidScale is the ADC code of zero input
	MidScale = 8192
	// MicrovoltsPerCode is the headset scale factor
	MicrovoltsPerCode = 0.51
)

// CalibratedSample holds one value in microvolts per channel
type CalibratedSample [NumChannels]float64

// Map returns the sample keyed by channel label
func (s CalibratedSample) Map() map[string]float64 {
	result := make(map[string]float64, NumChannels)
	for i, v := range s {
		result[channelLabels[i]] = v
	}
	return result
}

// ToMicrovolts converts a 14-bit ADC code to microvolts
func ToMicrovolts(raw uint16) float64 {
	return (float64(raw) - MidScale) * MicrovoltsPerCode
}

// Calibrate converts every channel of the sample to microvolts
func (s ChannelSample) Calibrate() CalibratedSample {
	var result CalibratedSample
	for i, v := range s {
		result[i] = ToMicrovolts(v)
	}
	return result
}
