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

package decode

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-epoc/pkg/config"
	"jinr.ru/greenlab/go-epoc/pkg/epoc"
	"jinr.ru/greenlab/go-epoc/pkg/hid"
	"jinr.ru/greenlab/go-epoc/pkg/log"
	"jinr.ru/greenlab/go-epoc/pkg/srv"
)

const (
	DeviceOptionName  = "device"
	SerialOptionName  = "serial"
	SourceOptionName  = "source"
	LegacyOptionName  = "legacy"
	CountOptionName   = "count"
	FormatOptionName  = "format"
	RawOptionName     = "raw"
	NoStateOptionName = "no-state"
)

var errEnough = errors.New("requested number of frames decoded")

func NewCommand(cfg *config.Config) *cobra.Command {
	var deviceName, serial, source, format string
	var legacy, raw, noState bool
	var count int
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode frames from a headset or a capture file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			device, err := resolveDevice(cfg, deviceName, serial, source)
			if err != nil {
				return err
			}

			legacyMode := cfg.Decode != nil && cfg.Decode.Legacy
			if cmd.Flags().Changed(LegacyOptionName) {
				legacyMode = legacy
			}
			if legacyMode {
				log.Warning("Legacy mode: channels are read as byte pairs, contact quality is not authoritative")
			}

			printer, err := NewPrinter(cmd.OutOrStdout(), format, raw)
			if err != nil {
				return err
			}

			decoder, err := epoc.NewDecoder(device.Serial, epoc.WithLegacy(legacyMode))
			if err != nil {
				return err
			}

			frameSource, err := hid.Open(device.Name, device.Path)
			if err != nil {
				return err
			}
			defer frameSource.Close()

			var state *srv.State
			if !noState {
				state, err = srv.NewState(cfg)
				if err != nil {
					return err
				}
				defer state.Close()
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			decoded := 0
			server, err := srv.NewDecodeServer(ctx, device, frameSource, decoder, state)
			if err != nil {
				return err
			}
			err = server.Run(func(f *srv.Frame) error {
				if printErr := printer.Print(f); printErr != nil {
					return printErr
				}
				decoded++
				if count > 0 && decoded >= count {
					return errEnough
				}
				return nil
			})
			if err == errEnough || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&deviceName, DeviceOptionName, config.DefaultDeviceName, "Device name from the config")
	cmd.Flags().StringVar(&serial, SerialOptionName, "", "Headset serial. Overrides the config")
	cmd.Flags().StringVar(&source, SourceOptionName, "", "hidraw node or capture file. Overrides the config")
	cmd.Flags().BoolVar(&legacy, LegacyOptionName, false, "Read channels as byte pairs and decode contact quality")
	cmd.Flags().IntVar(&count, CountOptionName, 0, "Stop after this many frames. 0 means no limit")
	cmd.Flags().StringVar(&format, FormatOptionName, FormatJSON, fmt.Sprintf("Output format. %s", HelpFormats))
	cmd.Flags().BoolVar(&raw, RawOptionName, false, "Print decrypted frame bytes")
	cmd.Flags().BoolVar(&noState, NoStateOptionName, false, "Do not record decode statistics")

	return cmd
}

// resolveDevice returns a copy of the configured device with command line overrides applied
func resolveDevice(cfg *config.Config, name, serial, source string) (*config.Device, error) {
	device := &config.Device{Name: name}
	configured, err := cfg.GetDeviceByName(name)
	if err == nil {
		*device = *configured
	} else if serial == "" || source == "" {
		return nil, err
	}
	if serial != "" {
		device.Serial = serial
	}
	if source != "" {
		device.Path = source
	}
	if device.Serial == "" {
		return nil, fmt.Errorf("Serial is not set for device %s. Use --%s or the config", device.Name, SerialOptionName)
	}
	if device.Path == "" {
		return nil, fmt.Errorf("Source is not set for device %s. Use --%s or the config", device.Name, SourceOptionName)
	}
	return device, nil
}
