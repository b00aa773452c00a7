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

// QualityMap holds a contact quality nibble per channel, 0 is bad and 15 is perfect.
//
// The nibble is read from the high half of byte 2*ch+2, which only makes
// sense together with ExtractChannelsLegacy. Under the bit map layout those
// bits belong to channel values.
type QualityMap [NumChannels]uint8

// Map returns the quality keyed by channel label
func (q QualityMap) Map() map[string]uint8 {
	result := make(map[string]uint8, NumChannels)
	for i, v := range q {
		result[channelLabels[i]] = v
	}
	return result
}

// ExtractQuality returns the legacy contact quality nibble of a channel
func ExtractQuality(frame *PlaintextFrame, ch Channel) (uint8, error) {
	if ch < 0 || int(ch) >= NumChannels {
		return 0, ErrUnknownChannel{Label: ch.String()}
	}
	return (frame[2*int(ch)+2] >> 4) & 0x0f, nil
}

// ExtractQualityMap returns the legacy contact quality of all channels
func ExtractQualityMap(frame *PlaintextFrame) QualityMap {
	var q QualityMap
	for ch := range q {
		q[ch] = (frame[2*ch+2] >> 4) & 0x0f
	}
	return q
}
