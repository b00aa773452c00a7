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

package key

import (
	"fmt"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-epoc/pkg/epoc"
)

// NewCommand creates a cobra command printing the frame key of a headset
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key SERIAL",
		Short: "Print the frame key derived from a headset serial",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := epoc.DeriveKey(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), key)
			return nil
		},
	}
	return cmd
}
