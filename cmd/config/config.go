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

package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"jinr.ru/greenlab/go-epoc/pkg/config"
	"jinr.ru/greenlab/go-epoc/pkg/epoc"
)

const (
	OverwriteOptionName = "overwrite"
	SerialOptionName    = "serial"
	PathOptionName      = "path"
)

func NewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(NewInitCommand(cfg))
	cmd.AddCommand(NewShowCommand(cfg))
	return cmd
}

func NewInitCommand(cfg *config.Config) *cobra.Command {
	var overwrite bool
	var serial, path string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the config file with default settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Devices) == 0 {
				cfg.Devices = append(cfg.Devices, &config.Device{Name: config.DefaultDeviceName, Path: config.DefaultDevicePath})
			}
			device := cfg.Devices[0]
			if serial != "" {
				if _, err := epoc.DeriveKey(serial); err != nil {
					return err
				}
				device.Serial = serial
			}
			if path != "" {
				device.Path = path
			}
			if err := cfg.Persist(overwrite); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", cfg.Path())
			return nil
		},
	}
	cmd.Flags().BoolVar(&overwrite, OverwriteOptionName, false, "Overwrite existing config file")
	cmd.Flags().StringVar(&serial, SerialOptionName, "", "Headset serial of the default device")
	cmd.Flags().StringVar(&path, PathOptionName, "", fmt.Sprintf("hidraw node of the default device. E.g. %s", config.DefaultDevicePath))
	return cmd
}

func NewShowCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n%s", cfg.Path(), data)
			return nil
		},
	}
	return cmd
}
