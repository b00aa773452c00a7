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
	"math/rand"
	"testing"
)

// encryptFrame is the device side of Decrypt
func encryptFrame(t *testing.T, key []byte, plain []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}
	raw := make([]byte, len(plain))
	for offset := 0; offset < len(plain); offset += aes.BlockSize {
		block.Encrypt(raw[offset:offset+aes.BlockSize], plain[offset:offset+aes.BlockSize])
	}
	return raw
}

func randomFrames(seed int64, n int) []*PlaintextFrame {
	rnd := rand.New(rand.NewSource(seed))
	frames := make([]*PlaintextFrame, n)
	for i := range frames {
		f := &PlaintextFrame{}
		rnd.Read(f[:])
		frames[i] = f
	}
	return frames
}
