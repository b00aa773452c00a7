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
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"

	"jinr.ru/greenlab/go-epoc/pkg/epoc"
)

const (
	// SensorLayerNum identifies the layer
	SensorLayerNum = 2002
)

var SensorLayerType = gopacket.RegisterLayerType(SensorLayerNum,
	gopacket.LayerTypeMetadata{Name: "SensorLayerType", Decoder: errorDecoderWithoutKey{}})

// SensorLayer holds the values decoded from a plaintext frame
type SensorLayer struct {
	layers.BaseLayer
	*epoc.DecodedFrame
}

// LayerType returns the type of the sensor layer in the layer catalog
func (s *SensorLayer) LayerType() gopacket.LayerType {
	return SensorLayerType
}

func (s *SensorLayer) DecodeFromBytes(data []byte, d *epoc.Decoder, df gopacket.DecodeFeedback) error {
	if len(data) != epoc.FrameSize {
		df.SetTruncated()
		return epoc.ErrFrameSize{Size: len(data)}
	}
	plain := &epoc.PlaintextFrame{}
	copy(plain[:], data)
	frame, err := d.DecodePlaintext(plain)
	if err != nil {
		return err
	}
	s.BaseLayer = layers.BaseLayer{
		Contents: data,
		Payload:  []byte{},
	}
	s.DecodedFrame = frame
	return nil
}

type sensorDecoder struct {
	*epoc.Decoder
}

func (sd *sensorDecoder) Decode(data []byte, p gopacket.PacketBuilder) error {
	s := &SensorLayer{}
	err := s.DecodeFromBytes(data, sd.Decoder, p)
	if err != nil {
		return err
	}
	p.AddLayer(s)
	return nil
}
