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
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Device is a headset. Serial is the USB serial string the frame key is derived from.
type Device struct {
	Name   string `yaml:"name"`
	Serial string `yaml:"serial"`
	Path   string `yaml:"path"`
}

type DecodeConfig struct {
	// Legacy decodes channels as byte pairs and adds contact quality
	Legacy bool `yaml:"legacy"`
}

type Config struct {
	LogLevel string        `yaml:"logLevel"`
	StateDir string        `yaml:"stateDir"`
	Devices  []*Device     `yaml:"devices"`
	Decode   *DecodeConfig `yaml:"decode"`
	filepath string
}

func (c *Config) Path() string {
	return c.filepath
}

func (c *Config) SetPath(path string) {
	c.filepath = path
}

func (c *Config) Persist(overwrite bool) error {
	if _, err := os.Stat(c.filepath); err == nil && !overwrite {
		return ErrConfigFileExists{Path: c.filepath}
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	dir := filepath.Dir(c.filepath)
	err = os.MkdirAll(dir, 0755)
	if err != nil {
		return err
	}

	return ioutil.WriteFile(c.filepath, data, 0644)
}

func (c *Config) LoadConfig() error {
	data, err := ioutil.ReadFile(c.filepath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// Load reads the config file if it exists and keeps defaults otherwise
func (c *Config) Load() error {
	err := c.LoadConfig()
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (c *Config) GetDeviceByName(name string) (*Device, error) {
	for _, device := range c.Devices {
		if device.Name == name {
			return device, nil
		}
	}
	return nil, ErrDeviceNotFound{Name: name}
}

func (c *Config) StateDBPath() string {
	return filepath.Join(c.StateDir, StateDBFile)
}

func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ConfigDir)
}

func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFile)
}

func NewDefaultConfig() *Config {
	return &Config{
		LogLevel: DefaultLogLevel,
		StateDir: DefaultConfigDir(),
		Devices: []*Device{
			{
				Name: DefaultDeviceName,
				Path: DefaultDevicePath,
			},
		},
		Decode: &DecodeConfig{
			Legacy: DefaultLegacyMode,
		},
		filepath: DefaultConfigPath(),
	}
}
