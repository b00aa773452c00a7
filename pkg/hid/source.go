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

package hid

import (
	"io"
	"os"
	"time"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-epoc/pkg/epoc"
	"jinr.ru/greenlab/go-epoc/pkg/log"
)

// FrameSource reads raw frames from a hidraw device node or from a file
// with frames recorded back to back. Each ReadPacketData call returns one
// frame. A trailing partial frame is returned as is so the decoder can
// reject it.
type FrameSource struct {
	Name string
	r    io.Reader
	c    io.Closer
}

var _ gopacket.PacketDataSource = &FrameSource{}

func NewFrameSource(name string, r io.Reader) *FrameSource {
	s := &FrameSource{
		Name: name,
		r:    r,
	}
	if c, ok := r.(io.Closer); ok {
		s.c = c
	}
	return s
}

// Open opens a hidraw node or a capture file
func Open(name, path string) (*FrameSource, error) {
	log.Info("Opening frame source: device: %s path: %s", name, path)
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewFrameSource(name, file), nil
}

// ReadPacketData reads the next frame.
// This method is from PacketDataSource interface.
func (s *FrameSource) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	data := make([]byte, epoc.FrameSize)
	length, err := io.ReadFull(s.r, data)
	ci := gopacket.CaptureInfo{
		Length:        length,
		CaptureLength: length,
		Timestamp:     time.Now(),
		AncillaryData: []interface{}{s.Name},
	}
	if err == io.ErrUnexpectedEOF {
		log.Warning("Short frame from %s: %d bytes", s.Name, length)
		return data[:length], ci, nil
	}
	if err != nil {
		return nil, ci, err
	}
	return data, ci, nil
}

func (s *FrameSource) Close() error {
	if s.c == nil {
		return nil
	}
	return s.c.Close()
}

// GetDeviceName returns the name of the device that produced the packet
func GetDeviceName(packet gopacket.Packet) (string, error) {
	meta := packet.Metadata()
	if len(meta.CaptureInfo.AncillaryData) >= 1 {
		name, ok := meta.CaptureInfo.AncillaryData[0].(string)
		if !ok {
			return "", ErrGetDeviceName{What: "can not cast ancillary data to string"}
		}
		return name, nil
	}
	return "", ErrGetDeviceName{What: "not enough ancillary data"}
}
