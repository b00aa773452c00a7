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
	// NumChannels is the number of electrode sites on the headset
	NumChannels = 14
	// BitsPerSample is the ADC resolution
	BitsPerSample = 14
	// MaxSample is the largest 14-bit ADC code
	MaxSample = 1<<BitsPerSample - 1
)

// Channel identifies one electrode site
type Channel int

const (
	AF3 Channel = iota
	F7
	F3
	FC5
	T7
	P7
	O1
	O2
	P8
	T8
	FC6
	F4
	F8
	AF4
)

var channelLabels = [NumChannels]string{
	"AF3", "F7", "F3", "FC5", "T7", "P7", "O1", "O2", "P8", "T8", "FC6", "F4", "F8", "AF4",
}

func (c Channel) String() string {
	if c < 0 || int(c) >= NumChannels {
		return "Unknown"
	}
	return channelLabels[c]
}

// Channels returns all channels in frame order
func Channels() []Channel {
	result := make([]Channel, NumChannels)
	for i := range result {
		result[i] = Channel(i)
	}
	return result
}

// ParseChannel returns the channel with the given label
func ParseChannel(label string) (Channel, error) {
	for i, l := range channelLabels {
		if l == label {
			return Channel(i), nil
		}
	}
	return 0, ErrUnknownChannel{Label: label}
}

// BitIndexList is the list of global frame bit indices for one channel,
// least significant output bit first.
type BitIndexList [BitsPerSample]uint16

// ChannelBitMap holds a BitIndexList per channel
type ChannelBitMap [NumChannels]BitIndexList

// defaultBitMap is the headset protocol table. The order of indices inside
// each list is part of the protocol.
var defaultBitMap = ChannelBitMap{
	AF3: {46, 47, 32, 33, 34, 35, 36, 37, 38, 39, 24, 25, 26, 27},
	F7:  {48, 49, 50, 51, 52, 53, 54, 55, 40, 41, 42, 43, 44, 45},
	F3:  {10, 11, 12, 13, 14, 15, 0, 1, 2, 3, 4, 5, 6, 7},
	FC5: {28, 29, 30, 31, 16, 17, 18, 19, 20, 21, 22, 23, 8, 9},
	T7:  {66, 67, 68, 69, 70, 71, 56, 57, 58, 59, 60, 61, 62, 63},
	P7:  {84, 85, 86, 87, 72, 73, 74, 75, 76, 77, 78, 79, 64, 65},
	O1:  {102, 103, 88, 89, 90, 91, 92, 93, 94, 95, 80, 81, 82, 83},
	O2:  {140, 141, 142, 143, 128, 129, 130, 131, 132, 133, 134, 135, 120, 121},
	P8:  {158, 159, 144, 145, 146, 147, 148, 149, 150, 151, 136, 137, 138, 139},
	T8:  {160, 161, 162, 163, 164, 165, 166, 167, 152, 153, 154, 155, 156, 157},
	FC6: {214, 215, 200, 201, 202, 203, 204, 205, 206, 207, 192, 193, 194, 195},
	F4:  {216, 217, 218, 219, 220, 221, 222, 223, 208, 209, 210, 211, 212, 213},
	F8:  {178, 179, 180, 181, 182, 183, 168, 169, 170, 171, 172, 173, 174, 175},
	AF4: {196, 197, 198, 199, 184, 185, 186, 187, 188, 189, 190, 191, 176, 177},
}

// DefaultBitMap returns a copy of the headset bit map
func DefaultBitMap() ChannelBitMap {
	return defaultBitMap
}

// Validate checks that every index addresses a bit inside a frame
func (m *ChannelBitMap) Validate() error {
	for ch, bits := range m {
		for _, idx := range bits {
			if idx >= FrameBits {
				return ErrBitIndexOutOfRange{Channel: Channel(ch), Index: idx}
			}
		}
	}
	return nil
}

// ChannelSample holds one raw 14-bit ADC code per channel
type ChannelSample [NumChannels]uint16

// Map returns the sample keyed by channel label
func (s ChannelSample) Map() map[string]uint16 {
	result := make(map[string]uint16, NumChannels)
	for i, v := range s {
		result[channelLabels[i]] = v
	}
	return result
}

// ExtractChannels assembles every channel value from single bits scattered
// over the frame. Bit i of a channel value is taken from the frame bit at
// the i-th index of its BitIndexList.
func ExtractChannels(frame *PlaintextFrame, m *ChannelBitMap) (ChannelSample, error) {
	var sample ChannelSample
	if err := m.Validate(); err != nil {
		return sample, err
	}
	for ch, bits := range m {
		var v uint16
		for i, idx := range bits {
			if frame.Bit(idx) {
				v |= 1 << uint(i)
			}
		}
		sample[ch] = v
	}
	return sample, nil
}

// ExtractChannelsLegacy reads every channel as a little endian byte pair
// starting at byte 2*ch+1, masked to 14 bits. This layout disagrees with
// the bit map on real frames and is kept only for comparison with older
// readers.
func ExtractChannelsLegacy(frame *PlaintextFrame) ChannelSample {
	var sample ChannelSample
	for ch := 0; ch < NumChannels; ch++ {
		lo := uint16(frame[2*ch+1])
		hi := uint16(frame[2*ch+2])
		sample[ch] = (hi<<8 | lo) & MaxSample
	}
	return sample
}
