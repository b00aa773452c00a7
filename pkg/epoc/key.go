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
	"encoding/hex"
)

const (
	// KeySize is the AES-128 key length in bytes
	KeySize = 16
)

// CipherKey is the frame key of a headset. It is derived from the
// device serial and does not change during a session.
type CipherKey [KeySize]byte

// Bytes returns a copy of the key as a slice
func (k CipherKey) Bytes() []byte {
	b := make([]byte, KeySize)
	copy(b, k[:])
	return b
}

func (k CipherKey) String() string {
	return hex.EncodeToString(k[:])
}

// DeriveKey copies the ASCII bytes of the serial and pads them with zeros up to KeySize.
// Serials longer than KeySize are rejected rather than truncated.
func DeriveKey(serial string) (CipherKey, error) {
	var key CipherKey
	for i := 0; i < len(serial); i++ {
		if serial[i] > 0x7f {
			return key, ErrConfig{Serial: serial, What: "non ASCII character"}
		}
	}
	if len(serial) > KeySize {
		return key, ErrConfig{Serial: serial, What: "longer than 16 bytes"}
	}
	copy(key[:], serial)
	return key, nil
}
