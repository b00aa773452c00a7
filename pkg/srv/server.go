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

package srv

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"time"

	"github.com/google/gopacket"

	"jinr.ru/greenlab/go-epoc/pkg/config"
	"jinr.ru/greenlab/go-epoc/pkg/epoc"
	"jinr.ru/greenlab/go-epoc/pkg/hid"
	"jinr.ru/greenlab/go-epoc/pkg/layers"
	"jinr.ru/greenlab/go-epoc/pkg/log"
)

const (
	InChSize = 128
	// StatsFlushEvery is the number of frames between state updates.
	// The headset sends 128 frames per second.
	StatsFlushEvery = 128
)

// Frame is a decoded frame together with its origin
type Frame struct {
	Device    string
	Timestamp time.Time
	Plaintext *epoc.PlaintextFrame
	*epoc.DecodedFrame
}

// Handler consumes decoded frames. A handler error stops the server.
type Handler func(*Frame) error

// DecodeServer reads raw frames of one headset from a packet source,
// decodes them and passes them to a handler. Frames that fail to decode
// are logged, counted and dropped.
type DecodeServer struct {
	context.Context
	*config.Device
	source  gopacket.PacketDataSource
	decoder *layers.FrameDecoder
	state   *State
	stats   *DeviceStats
	pending int
}

// NewDecodeServer creates a server. state may be nil, then stats are kept in memory only.
// A stored stats record that can not be read is an error, so it is never overwritten.
func NewDecodeServer(ctx context.Context, device *config.Device, source gopacket.PacketDataSource,
	decoder *epoc.Decoder, state *State) (*DecodeServer, error) {
	log.Info("Initializing decode server: device: %s legacy: %t", device.Name, decoder.Legacy())

	stats := &DeviceStats{}
	if state != nil {
		stored, err := state.GetDeviceStats(device.Name)
		switch {
		case err == nil:
			stats = stored
		case errors.As(err, &ErrBucketNotFound{}), errors.As(err, &ErrStatsNotFound{}):
			log.Debug("No stored stats for device %s: %s", device.Name, err)
		default:
			log.Error("Error while loading stats for device %s: %s", device.Name, err)
			return nil, err
		}
	}
	stats.Name = device.Name
	stats.Serial = device.Serial
	stats.Source = device.Path

	return &DecodeServer{
		Context: ctx,
		Device:  device,
		source:  source,
		decoder: layers.NewFrameDecoder(decoder),
		state:   state,
		stats:   stats,
	}, nil
}

// Stats returns a copy of the current device stats
func (s *DecodeServer) Stats() DeviceStats {
	return *s.stats
}

// Run decodes frames until the source is exhausted, the context is done
// or the handler fails. An exhausted source is not an error.
func (s *DecodeServer) Run(handler Handler) error {
	// the reader goroutine must exit whenever Run returns
	ctx, cancel := context.WithCancel(s.Context)
	defer cancel()

	errChan := make(chan error, 1)
	chIn := make(chan gopacket.Packet, InChSize)

	defer s.flushStats()

	// Read frames from the source and put them to input queue
	go func() {
		source := gopacket.NewPacketSource(s.source, s.decoder)
		for {
			packet, err := source.NextPacket()
			if err == io.EOF {
				close(chIn)
				return
			}
			if err != nil {
				errChan <- err
				return
			}
			select {
			case chIn <- packet:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-errChan:
			log.Error("Error while reading frames from %s: %s", s.Device.Name, err)
			return err
		case packet, ok := <-chIn:
			if !ok {
				log.Info("Frame source exhausted: device: %s decoded: %d failed: %d",
					s.Device.Name, s.stats.FramesDecoded, s.stats.FramesFailed)
				return nil
			}
			if err := s.handlePacket(packet, handler); err != nil {
				return err
			}
		}
	}
}

func (s *DecodeServer) handlePacket(packet gopacket.Packet, handler Handler) error {
	deviceName, err := hid.GetDeviceName(packet)
	if err != nil {
		deviceName = s.Device.Name
	}

	if decodeErr := layers.DecodeError(packet); decodeErr != nil {
		log.Error("Drop frame from %s: %s", deviceName, decodeErr)
		s.stats.FramesFailed++
		s.stats.LastError = decodeErr.Error()
		s.countPending()
		return nil
	}

	epocLayer := packet.Layer(layers.EpocLayerType).(*layers.EpocLayer)
	sensorLayer := packet.Layer(layers.SensorLayerType).(*layers.SensorLayer)
	if log.Enabled(log.DebugLevel) {
		log.Debug("Frame from %s: raw: %s plaintext: %s", deviceName,
			hex.EncodeToString(epocLayer.LayerContents()), hex.EncodeToString(epocLayer.LayerPayload()))
	}

	frame := &Frame{
		Device:       deviceName,
		Timestamp:    packet.Metadata().Timestamp,
		Plaintext:    epocLayer.Plaintext,
		DecodedFrame: sensorLayer.DecodedFrame,
	}
	s.stats.FramesDecoded++
	s.stats.LastSeen = frame.Timestamp
	s.countPending()

	return handler(frame)
}

func (s *DecodeServer) countPending() {
	s.pending++
	if s.pending >= StatsFlushEvery {
		s.flushStats()
	}
}

func (s *DecodeServer) flushStats() {
	s.pending = 0
	if s.state == nil {
		return
	}
	if err := s.state.SetDeviceStats(s.stats); err != nil {
		log.Error("Error while saving stats for device %s: %s", s.Device.Name, err)
	}
}
