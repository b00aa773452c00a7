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
	"fmt"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-epoc/pkg/epoc"
)

const (
	// EpocLayerNum identifies the layer
	EpocLayerNum = 2001
)

// errorDecoderWithoutKey is registered for EpocLayerType because a frame
// can not be decoded without the device key. Use FrameDecoder instead.
type errorDecoderWithoutKey struct{}

func (e errorDecoderWithoutKey) Decode(data []byte, p gopacket.PacketBuilder) error {
	return e
}

func (e errorDecoderWithoutKey) Error() string {
	return "Unable to decode EPOC frame without device key"
}

var EpocLayerType = gopacket.RegisterLayerType(EpocLayerNum,
	gopacket.LayerTypeMetadata{Name: "EpocLayerType", Decoder: errorDecoderWithoutKey{}})

// EpocLayer is an encrypted headset frame. Contents holds the raw bytes
// and Payload the decrypted ones.
type EpocLayer struct {
	layers.BaseLayer
	Plaintext *epoc.PlaintextFrame
}

// LayerType returns the type of the EPOC layer in the layer catalog
func (e *EpocLayer) LayerType() gopacket.LayerType {
	return EpocLayerType
}

func (e *EpocLayer) NextLayerType() gopacket.LayerType {
	return SensorLayerType
}

// SerializeTo writes the raw encrypted frame
func (e *EpocLayer) SerializeTo(b gopacket.SerializeBuffer, opts gopacket.SerializeOptions) error {
	if len(e.Contents) != epoc.FrameSize {
		return epoc.ErrFrameSize{Size: len(e.Contents)}
	}
	bytes, err := b.PrependBytes(epoc.FrameSize)
	if err != nil {
		return err
	}
	copy(bytes, e.Contents)
	return nil
}

// DecodeFromBytes decrypts the byte slice as an EPOC frame
func (e *EpocLayer) DecodeFromBytes(data []byte, d *epoc.Decoder, df gopacket.DecodeFeedback) error {
	if len(data) < epoc.FrameSize {
		df.SetTruncated()
	}
	plain, err := d.Decrypt(data)
	if err != nil {
		return err
	}
	e.BaseLayer = layers.BaseLayer{
		Contents: data,
		Payload:  plain[:],
	}
	e.Plaintext = plain
	return nil
}

// FrameDecoder decodes raw frames of one headset into EpocLayer and SensorLayer
type FrameDecoder struct {
	*epoc.Decoder
}

var _ gopacket.Decoder = &FrameDecoder{}

func NewFrameDecoder(d *epoc.Decoder) *FrameDecoder {
	return &FrameDecoder{Decoder: d}
}

func (fd *FrameDecoder) Decode(data []byte, p gopacket.PacketBuilder) error {
	e := &EpocLayer{}
	err := e.DecodeFromBytes(data, fd.Decoder, p)
	if err != nil {
		return err
	}
	p.AddLayer(e)
	return p.NextDecoder(&sensorDecoder{Decoder: fd.Decoder})
}

// NewPacket decodes a single raw frame
func (fd *FrameDecoder) NewPacket(data []byte) gopacket.Packet {
	return gopacket.NewPacket(data, fd, gopacket.Default)
}

// DecodeError returns the error that stopped decoding of the packet, if any
func DecodeError(packet gopacket.Packet) error {
	if errLayer := packet.ErrorLayer(); errLayer != nil {
		return errLayer.Error()
	}
	if packet.Layer(SensorLayerType) == nil {
		return fmt.Errorf("Packet has no sensor layer")
	}
	return nil
}
