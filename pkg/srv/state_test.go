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
	"errors"
	"testing"
	"time"
)

func TestStateDeviceStats(t *testing.T) {
	state := testState(t)

	_, err := state.GetDeviceStats("headset")
	var notFound ErrBucketNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("expected ErrBucketNotFound, got %v", err)
	}

	seen := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, ds := range []*DeviceStats{
		{Name: "headset", Serial: "SN1", FramesDecoded: 10, LastSeen: seen},
		{Name: "spare", Serial: "SN2", FramesFailed: 2, LastError: "short frame"},
	} {
		if err := state.SetDeviceStats(ds); err != nil {
			t.Fatalf("SetDeviceStats failed: %v", err)
		}
	}

	ds, err := state.GetDeviceStats("headset")
	if err != nil {
		t.Fatalf("GetDeviceStats failed: %v", err)
	}
	if ds.Serial != "SN1" || ds.FramesDecoded != 10 || !ds.LastSeen.Equal(seen) {
		t.Errorf("unexpected stats: %s", ds)
	}

	all, err := state.GetAllDeviceStats()
	if err != nil {
		t.Fatalf("GetAllDeviceStats failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("got %d devices, want 2", len(all))
	}

	if err := state.DeleteDeviceStats("spare"); err != nil {
		t.Fatalf("DeleteDeviceStats failed: %v", err)
	}
	if err := state.DeleteDeviceStats("spare"); !errors.As(err, &notFound) {
		t.Errorf("expected ErrBucketNotFound, got %v", err)
	}
	all, _ = state.GetAllDeviceStats()
	if len(all) != 1 || all[0].Name != "headset" {
		t.Errorf("unexpected devices after delete: %v", all)
	}
}
