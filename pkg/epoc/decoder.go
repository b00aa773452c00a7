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
	"encoding/json"
)

// DecodedFrame is everything decoded from one raw frame
type DecodedFrame struct {
	EEG CalibratedSample
	Raw ChannelSample
	Gyro
	// Quality is only set in legacy mode
	Quality *QualityMap
}

type decodedFrameJSON struct {
	EEG     map[string]float64 `json:"eeg"`
	Gyro    Gyro               `json:"gyro"`
	Quality map[string]uint8   `json:"quality,omitempty"`
}

func (f DecodedFrame) MarshalJSON() ([]byte, error) {
	out := decodedFrameJSON{
		EEG:  f.EEG.Map(),
		Gyro: f.Gyro,
	}
	if f.Quality != nil {
		out.Quality = f.Quality.Map()
	}
	return json.Marshal(out)
}

// Decoder turns raw frames of one headset into DecodedFrames.
// It is not modified after NewDecoder and may be shared between goroutines.
type Decoder struct {
	key    CipherKey
	bitMap ChannelBitMap
	legacy bool
}

// Option configures a Decoder
type Option func(*Decoder)

// WithLegacy switches channel extraction to the byte pair layout and
// enables the contact quality nibbles
func WithLegacy(legacy bool) Option {
	return func(d *Decoder) {
		d.legacy = legacy
	}
}

// WithBitMap replaces the headset bit map
func WithBitMap(m ChannelBitMap) Option {
	return func(d *Decoder) {
		d.bitMap = m
	}
}

// NewDecoder derives the frame key from the device serial
func NewDecoder(serial string, opts ...Option) (*Decoder, error) {
	key, err := DeriveKey(serial)
	if err != nil {
		return nil, err
	}
	d := &Decoder{
		key:    key,
		bitMap: DefaultBitMap(),
	}
	for _, opt := range opts {
		opt(d)
	}
	if err := d.bitMap.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}

// Key returns the frame key derived from the device serial
func (d *Decoder) Key() CipherKey {
	return d.key
}

// Legacy reports whether the byte pair layout is used
func (d *Decoder) Legacy() bool {
	return d.legacy
}

// Decrypt decrypts a raw frame with the decoder key
func (d *Decoder) Decrypt(raw []byte) (*PlaintextFrame, error) {
	return Decrypt(d.key[:], raw)
}

// DecodePlaintext extracts and calibrates all values of a decrypted frame
func (d *Decoder) DecodePlaintext(plain *PlaintextFrame) (*DecodedFrame, error) {
	var raw ChannelSample
	if d.legacy {
		raw = ExtractChannelsLegacy(plain)
	} else {
		var err error
		raw, err = ExtractChannels(plain, &d.bitMap)
		if err != nil {
			return nil, err
		}
	}
	frame := &DecodedFrame{
		EEG:  raw.Calibrate(),
		Raw:  raw,
		Gyro: ExtractGyro(plain),
	}
	if d.legacy {
		q := ExtractQualityMap(plain)
		frame.Quality = &q
	}
	return frame, nil
}

// Decode decrypts and decodes a raw frame
func (d *Decoder) Decode(raw []byte) (*DecodedFrame, error) {
	plain, err := d.Decrypt(raw)
	if err != nil {
		return nil, err
	}
	return d.DecodePlaintext(plain)
}
