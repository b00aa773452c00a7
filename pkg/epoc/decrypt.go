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
	"crypto/aes"
)

const (
	// FrameSize is the size of both the raw and the decrypted frame
	FrameSize = 32
	// FrameBits is the number of addressable bits in a frame
	FrameBits = FrameSize * 8
	// BlockSize is the AES block size. A frame is two blocks.
	BlockSize = aes.BlockSize
)

// PlaintextFrame is a decrypted frame
type PlaintextFrame [FrameSize]byte

// Bit reports whether the bit with global index idx is set.
// Bits are numbered byte-major, bit-minor: idx 0 is bit 0 of byte 0.
func (f *PlaintextFrame) Bit(idx uint16) bool {
	return (f[idx/8]>>(idx%8))&1 == 1
}

// Decrypt decrypts both 16-byte halves of a raw frame independently with
// the same key (ECB, no IV, no padding) and returns them in original order.
func Decrypt(key, frame []byte) (*PlaintextFrame, error) {
	if len(key) != KeySize {
		return nil, ErrKeySize{Size: len(key)}
	}
	if len(frame) != FrameSize {
		return nil, ErrFrameSize{Size: len(frame)}
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrDecrypt{Err: err}
	}
	plain := &PlaintextFrame{}
	for offset := 0; offset < FrameSize; offset += BlockSize {
		block.Decrypt(plain[offset:offset+BlockSize], frame[offset:offset+BlockSize])
	}
	return plain, nil
}
