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

package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"jinr.ru/greenlab/go-epoc/cmd/completion"
	"jinr.ru/greenlab/go-epoc/cmd/config"
	"jinr.ru/greenlab/go-epoc/cmd/decode"
	"jinr.ru/greenlab/go-epoc/cmd/key"
	"jinr.ru/greenlab/go-epoc/cmd/state"
	pkgconfig "jinr.ru/greenlab/go-epoc/pkg/config"
	"jinr.ru/greenlab/go-epoc/pkg/log"
)

const (
	LogLevelOptionName = "log-level"
)

func NewRootCommand(out io.Writer) *cobra.Command {
	cfg := pkgconfig.NewDefaultConfig()
	if err := cfg.Load(); err != nil {
		log.Warning("Error while loading config %s: %s", cfg.Path(), err)
	}
	return NewRootCommandWithConfig(out, cfg)
}

func NewRootCommandWithConfig(out io.Writer, cfg *pkgconfig.Config) *cobra.Command {
	var logLevel string
	cmd := &cobra.Command{
		Use:           "go-epoc",
		Short:         "Tool to decode EPOC headset frames",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if err := log.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			log.Init(cmd.ErrOrStderr(), cfg.LogLevel)
			return nil
		},
	}
	cmd.SetOut(out)
	cmd.AddCommand(config.NewCommand(cfg))
	cmd.AddCommand(decode.NewCommand(cfg))
	cmd.AddCommand(key.NewCommand())
	cmd.AddCommand(state.NewCommand(cfg))
	cmd.AddCommand(completion.NewCommand())
	cmd.PersistentFlags().StringVar(&logLevel, LogLevelOptionName, "", fmt.Sprintf("Log level. %s", log.HelpLevels))
	return cmd
}
