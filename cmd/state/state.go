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

package state

import (
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-epoc/pkg/config"
	"jinr.ru/greenlab/go-epoc/pkg/srv"
)

func NewCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "state",
		Short: "Show or reset decode statistics",
	}
	cmd.AddCommand(NewListCommand(cfg))
	cmd.AddCommand(NewResetCommand(cfg))
	return cmd
}

func NewListCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List decode statistics of all devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := srv.NewState(cfg)
			if err != nil {
				return err
			}
			defer state.Close()
			devices, err := state.GetAllDeviceStats()
			if err != nil {
				return err
			}
			for _, ds := range devices {
				fmt.Fprint(cmd.OutOrStdout(), ds.String())
			}
			return nil
		},
	}
	return cmd
}

func NewResetCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset DEVICE",
		Short: "Delete decode statistics of a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := srv.NewState(cfg)
			if err != nil {
				return err
			}
			defer state.Close()
			return state.DeleteDeviceStats(args[0])
		},
	}
	return cmd
}
