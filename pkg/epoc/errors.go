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

import (
	"fmt"
)

// ErrConfig returned when a device serial can not be turned into a cipher key
type ErrConfig struct {
	Serial string
	What   string
}

func (e ErrConfig) Error() string {
	return fmt.Sprintf("Invalid device serial %q: %s", e.Serial, e.What)
}

// ErrFrameSize returned when a raw frame is not exactly FrameSize bytes long
type ErrFrameSize struct {
	Size int
}

func (e ErrFrameSize) Error() string {
	return fmt.Sprintf("Wrong frame size: %d. Must be %d", e.Size, FrameSize)
}

// ErrKeySize returned when a cipher key is not exactly KeySize bytes long
type ErrKeySize struct {
	Size int
}

func (e ErrKeySize) Error() string {
	return fmt.Sprintf("Wrong key size: %d. Must be %d", e.Size, KeySize)
}

// ErrBitIndexOutOfRange returned when the channel bit map addresses a bit outside of the frame
type ErrBitIndexOutOfRange struct {
	Channel Channel
	Index   uint16
}

func (e ErrBitIndexOutOfRange) Error() string {
	return fmt.Sprintf("Bit index %d for channel %s is out of range. Must be less than %d",
		e.Index, e.Channel, FrameBits)
}

// ErrDecrypt returned when the block cipher rejects the key or the block
type ErrDecrypt struct {
	Err error
}

func (e ErrDecrypt) Error() string {
	return fmt.Sprintf("Error while decrypting frame: %s", e.Err)
}

func (e ErrDecrypt) Unwrap() error {
	return e.Err
}

// ErrUnknownChannel returned when a label does not name one of the headset channels
type ErrUnknownChannel struct {
	Label string
}

func (e ErrUnknownChannel) Error() string {
	return fmt.Sprintf("Unknown channel: %s", e.Label)
}
