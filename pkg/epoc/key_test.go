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
	"errors"
	"testing"
)

func TestDeriveKey(t *testing.T) {
	testCases := []struct {
		name   string
		serial string
	}{
		{name: "empty", serial: ""},
		{name: "short", serial: "SN2014"},
		{name: "typical", serial: "SN20120229000459"[:14]},
		{name: "full", serial: "SN20120229000459"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := DeriveKey(tc.serial)
			if err != nil {
				t.Fatalf("DeriveKey failed: %v", err)
			}
			if len(key.Bytes()) != KeySize {
				t.Fatalf("unexpected key length: %d", len(key.Bytes()))
			}
			if got := string(key[:len(tc.serial)]); got != tc.serial {
				t.Errorf("key prefix %q does not match serial %q", got, tc.serial)
			}
			for i := len(tc.serial); i < KeySize; i++ {
				if key[i] != 0 {
					t.Errorf("padding byte %d is 0x%02x, want 0", i, key[i])
				}
			}
		})
	}
}

func TestDeriveKeyRejectsBadSerial(t *testing.T) {
	for _, serial := range []string{"SN201202290004590", "SN2014é"} {
		_, err := DeriveKey(serial)
		var cfgErr ErrConfig
		if !errors.As(err, &cfgErr) {
			t.Errorf("DeriveKey(%q): expected ErrConfig, got %v", serial, err)
		}
	}
}

func TestCipherKeyString(t *testing.T) {
	key, err := DeriveKey("AB")
	if err != nil {
		t.Fatalf("DeriveKey failed: %v", err)
	}
	if got, want := key.String(), "41420000000000000000000000000000"; got != want {
		t.Errorf("unexpected key: %s, want %s", got, want)
	}
}
