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
	"bytes"
	"io"
	"testing"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-epoc/pkg/epoc"
)

func TestFrameSource(t *testing.T) {
	data := make([]byte, 2*epoc.FrameSize+5)
	for i := range data {
		data[i] = byte(i)
	}
	s := NewFrameSource("headset", bytes.NewReader(data))

	for i := 0; i < 2; i++ {
		frame, ci, err := s.ReadPacketData()
		if err != nil {
			t.Fatalf("ReadPacketData failed: %v", err)
		}
		if !bytes.Equal(frame, data[i*epoc.FrameSize:(i+1)*epoc.FrameSize]) {
			t.Errorf("frame %d: unexpected data %x", i, frame)
		}
		if ci.CaptureLength != epoc.FrameSize {
			t.Errorf("frame %d: capture length %d", i, ci.CaptureLength)
		}
	}

	frame, _, err := s.ReadPacketData()
	if err != nil {
		t.Fatalf("short frame: ReadPacketData failed: %v", err)
	}
	if len(frame) != 5 {
		t.Errorf("short frame: got %d bytes, want 5", len(frame))
	}

	if _, _, err = s.ReadPacketData(); err != io.EOF {
		t.Errorf("expected io.EOF, got %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
}

func TestGetDeviceName(t *testing.T) {
	s := NewFrameSource("headset", bytes.NewReader(make([]byte, epoc.FrameSize)))
	data, ci, err := s.ReadPacketData()
	if err != nil {
		t.Fatalf("ReadPacketData failed: %v", err)
	}
	packet := gopacket.NewPacket(data, gopacket.DecodePayload, gopacket.Default)
	packet.Metadata().CaptureInfo = ci
	name, err := GetDeviceName(packet)
	if err != nil {
		t.Fatalf("GetDeviceName failed: %v", err)
	}
	if name != "headset" {
		t.Errorf("unexpected device name: %s", name)
	}
}
