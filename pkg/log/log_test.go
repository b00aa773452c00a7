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

package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(&buf, "warning")
	defer Init(&bytes.Buffer{}, "info")

	Debug("debug message")
	Info("info message")
	Warning("short frame: %d bytes", 5)
	Error("decode failed")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warning level were logged: %s", out)
	}
	if !strings.Contains(out, LogPrefix) || !strings.Contains(out, WarningPrefix+"short frame: 5 bytes") {
		t.Errorf("warning was not logged: %s", out)
	}
	if !strings.Contains(out, ErrorPrefix+"decode failed") {
		t.Errorf("error was not logged: %s", out)
	}
}

func TestSetLevelRejectsUnknown(t *testing.T) {
	if err := SetLevel("verbose"); err == nil {
		t.Errorf("expected error for unknown level")
	}
}

func TestEnabled(t *testing.T) {
	Init(&bytes.Buffer{}, "info")
	if Enabled(DebugLevel) {
		t.Errorf("debug must be disabled at info level")
	}
	if !Enabled(WarningLevel) {
		t.Errorf("warning must be enabled at info level")
	}
	if level, err := ParseLevel("warn"); err != nil || level != WarningLevel {
		t.Errorf("ParseLevel(warn) = %d, %v", level, err)
	}
}
