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

package layers

import (
	"bytes"
	"crypto/aes"
	"errors"
	"testing"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-epoc/pkg/epoc"
)

func encrypt(t *testing.T, key epoc.CipherKey, plain []byte) []byte {
	t.Helper()
	block, err := aes.NewCipher(key[:])
	if err != nil {
		t.Fatalf("NewCipher failed: %v", err)
	}
	raw := make([]byte, len(plain))
	for offset := 0; offset < len(plain); offset += aes.BlockSize {
		block.Encrypt(raw[offset:offset+aes.BlockSize], plain[offset:offset+aes.BlockSize])
	}
	return raw
}

func TestFrameDecoder(t *testing.T) {
	d, err := epoc.NewDecoder("SN2014")
	if err != nil {
		t.Fatalf("NewDecoder failed: %v", err)
	}
	plain := &epoc.PlaintextFrame{}
	plain[epoc.GyroXOffset] = 130
	plain[epoc.GyroYOffset] = 120
	raw := encrypt(t, d.Key(), plain[:])

	packet := NewFrameDecoder(d).NewPacket(raw)
	if err := DecodeError(packet); err != nil {
		t.Fatalf("DecodeError: %v", err)
	}

	e, ok := packet.Layer(EpocLayerType).(*EpocLayer)
	if !ok {
		t.Fatalf("packet has no EPOC layer")
	}
	if !bytes.Equal(e.LayerContents(), raw) || *e.Plaintext != *plain {
		t.Errorf("unexpected EPOC layer contents")
	}

	s, ok := packet.Layer(SensorLayerType).(*SensorLayer)
	if !ok {
		t.Fatalf("packet has no sensor layer")
	}
	if s.Gyro != (epoc.Gyro{X: 2, Y: -8}) {
		t.Errorf("unexpected gyro: %+v", s.Gyro)
	}
	if s.Raw != (epoc.ChannelSample{}) {
		t.Errorf("zero frame decoded to %v", s.Raw)
	}
}

func TestFrameDecoderShortFrame(t *testing.T) {
	d, _ := epoc.NewDecoder("SN2014")
	packet := NewFrameDecoder(d).NewPacket(make([]byte, 20))

	err := DecodeError(packet)
	var sizeErr epoc.ErrFrameSize
	if !errors.As(err, &sizeErr) {
		t.Fatalf("expected ErrFrameSize, got %v", err)
	}
	if packet.Layer(SensorLayerType) != nil {
		t.Errorf("short frame must not produce a sensor layer")
	}
}

func TestEpocLayerSerialize(t *testing.T) {
	d, _ := epoc.NewDecoder("SN2014")
	raw := encrypt(t, d.Key(), make([]byte, epoc.FrameSize))
	packet := NewFrameDecoder(d).NewPacket(raw)
	e := packet.Layer(EpocLayerType).(*EpocLayer)

	buf := gopacket.NewSerializeBuffer()
	if err := gopacket.SerializeLayers(buf, gopacket.SerializeOptions{}, e); err != nil {
		t.Fatalf("SerializeLayers failed: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), raw) {
		t.Errorf("serialized frame %x, want %x", buf.Bytes(), raw)
	}
}

func TestEpocLayerTypeNeedsKey(t *testing.T) {
	packet := gopacket.NewPacket(make([]byte, epoc.FrameSize), EpocLayerType, gopacket.Default)
	if packet.ErrorLayer() == nil {
		t.Errorf("decoding without key must fail")
	}
}
