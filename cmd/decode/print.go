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
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"sigs.k8s.io/yaml"

	"jinr.ru/greenlab/go-epoc/pkg/epoc"
	"jinr.ru/greenlab/go-epoc/pkg/srv"
)

const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	HelpFormats = "Must be one of: json, yaml."
)

type record struct {
	Device    string             `json:"device"`
	Timestamp time.Time          `json:"timestamp"`
	EEG       map[string]float64 `json:"eeg"`
	Gyro      epoc.Gyro          `json:"gyro"`
	Quality   map[string]uint8   `json:"quality,omitempty"`
	Plaintext string             `json:"plaintext,omitempty"`
}

// Printer writes decoded frames one per line (json) or one per document (yaml)
type Printer struct {
	out    io.Writer
	format string
	raw    bool
}

func NewPrinter(out io.Writer, format string, raw bool) (*Printer, error) {
	if format != FormatJSON && format != FormatYAML {
		return nil, fmt.Errorf("Wrong output format %q. %s", format, HelpFormats)
	}
	return &Printer{out: out, format: format, raw: raw}, nil
}

func (p *Printer) Print(f *srv.Frame) error {
	r := &record{
		Device:    f.Device,
		Timestamp: f.Timestamp,
		EEG:       f.EEG.Map(),
		Gyro:      f.Gyro,
	}
	if f.Quality != nil {
		r.Quality = f.Quality.Map()
	}
	if p.raw && f.Plaintext != nil {
		r.Plaintext = hex.EncodeToString(f.Plaintext[:])
	}

	switch p.format {
	case FormatYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.out, "---\n%s", data)
		return err
	default:
		data, err := json.Marshal(r)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(p.out, "%s\n", data)
		return err
	}
}
