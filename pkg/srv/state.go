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
	"fmt"
	"os"
	"time"

	"go.etcd.io/bbolt"
	"sigs.k8s.io/yaml"

	"jinr.ru/greenlab/go-epoc/pkg/config"
	"jinr.ru/greenlab/go-epoc/pkg/log"
)

const (
	BucketPrefix = "device_"
	StatsKey     = "stats"
	OpenTimeout  = time.Second
)

// DeviceStats counts decoded frames of a headset. Samples themselves are never stored.
type DeviceStats struct {
	Name          string    `json:"name"`
	Serial        string    `json:"serial,omitempty"`
	Source        string    `json:"source,omitempty"`
	FramesDecoded uint64    `json:"framesDecoded"`
	FramesFailed  uint64    `json:"framesFailed"`
	LastError     string    `json:"lastError,omitempty"`
	LastSeen      time.Time `json:"lastSeen"`
}

func (ds *DeviceStats) String() string {
	result, err := yaml.Marshal(ds)
	if err != nil {
		log.Info("Error occured while marshaling device stats, %s", err)
		return ""
	}
	return fmt.Sprintf("---\n%s", string(result))
}

type State struct {
	DB *bbolt.DB
}

func NewState(cfg *config.Config) (*State, error) {
	if err := os.MkdirAll(cfg.StateDir, 0755); err != nil {
		return nil, err
	}
	db, err := bbolt.Open(cfg.StateDBPath(), 0600, &bbolt.Options{Timeout: OpenTimeout})
	if err != nil {
		return nil, err
	}
	return &State{
		DB: db,
	}, nil
}

// Close ...
func (s *State) Close() {
	s.DB.Close()
}

func BucketName(deviceName string) string {
	return fmt.Sprintf("%s%s", BucketPrefix, deviceName)
}

// SetDeviceStats ...
func (s *State) SetDeviceStats(ds *DeviceStats) error {
	log.Debug("Setting device stats: device: %s decoded: %d failed: %d",
		ds.Name, ds.FramesDecoded, ds.FramesFailed)
	return s.DB.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(BucketName(ds.Name)))
		if err != nil {
			return err
		}
		dsBytes, err := yaml.Marshal(ds)
		if err != nil {
			return err
		}
		return b.Put([]byte(StatsKey), dsBytes)
	})
}

// GetDeviceStats ...
func (s *State) GetDeviceStats(deviceName string) (*DeviceStats, error) {
	log.Debug("Getting device stats: device: %s", deviceName)
	ds := &DeviceStats{}
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(BucketName(deviceName)))
		if b == nil {
			return ErrBucketNotFound{Name: BucketName(deviceName)}
		}
		dsBytes := b.Get([]byte(StatsKey))
		if dsBytes == nil {
			return ErrStatsNotFound{Device: deviceName}
		}
		return yaml.Unmarshal(dsBytes, ds)
	}); err != nil {
		return nil, err
	}
	return ds, nil
}

// GetAllDeviceStats ...
func (s *State) GetAllDeviceStats() ([]*DeviceStats, error) {
	log.Debug("Getting all device stats")
	var devices []*DeviceStats
	if err := s.DB.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(name []byte, b *bbolt.Bucket) error {
			dsBytes := b.Get([]byte(StatsKey))
			if dsBytes == nil {
				log.Warning("Stats not found in bucket %s", name)
				return nil
			}
			ds := &DeviceStats{}
			if err := yaml.Unmarshal(dsBytes, ds); err != nil {
				log.Error("Error while unmarshalling DeviceStats %s", err)
				return err
			}
			devices = append(devices, ds)
			return nil
		})
	}); err != nil {
		return nil, err
	}
	return devices, nil
}

// DeleteDeviceStats ...
func (s *State) DeleteDeviceStats(deviceName string) error {
	log.Debug("Deleting device stats: device: %s", deviceName)
	return s.DB.Update(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket([]byte(BucketName(deviceName)))
		if err == bbolt.ErrBucketNotFound {
			return ErrBucketNotFound{Name: BucketName(deviceName)}
		}
		return err
	})
}
