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
	"testing"
)

func TestExtractQuality(t *testing.T) {
	frame := &PlaintextFrame{}
	frame[2*int(T8)+2] = 0xa7
	q, err := ExtractQuality(frame, T8)
	if err != nil {
		t.Fatalf("ExtractQuality failed: %v", err)
	}
	if q != 0x0a {
		t.Errorf("T8 quality: got %d, want 10", q)
	}
	if _, err := ExtractQuality(frame, Channel(NumChannels)); err == nil {
		t.Errorf("expected error for channel out of range")
	}

	all := ExtractQualityMap(frame)
	for _, ch := range Channels() {
		want := uint8(0)
		if ch == T8 {
			want = 0x0a
		}
		if all[ch] != want {
			t.Errorf("channel %s: got %d, want %d", ch, all[ch], want)
		}
	}
}
