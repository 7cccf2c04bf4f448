/*
   Copyright The containerd Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package commands

import (
	"io"
	"text/tabwriter"

	"github.com/containerd/log"
	"github.com/containerd/xattr"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	mainCmdConfig struct {
		debug         bool
		noDereference bool
		workers       int
	}

	MainCmd = &cobra.Command{
		Use:           "xattr <command>",
		Short:         "Inspect and edit the extended attributes of files.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logrus.SetFormatter(&logrus.TextFormatter{
				FullTimestamp: true,
			})
			if mainCmdConfig.debug {
				return log.SetLevel("debug")
			}
			return nil
		},
	}

	// usageTemplate is nearly identical to the default template without the
	// automatic addition of flags. Instead, Command.Use is used unmodified.
	usageTemplate = `{{ $cmd := . }}
Usage: {{if .Runnable}}
  {{.UseLine}}{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}
{{end}}{{if .HasExample}}

Examples:
{{ .Example }}{{end}}{{ if .HasAvailableSubCommands}}

Available Commands: {{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{ if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages}}{{end}}{{ if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages}}{{end}}{{ if .HasAvailableSubCommands }}

Use "{{.CommandPath}} [command] --help" for more information about a command.
{{end}}`
)

func init() {
	flags := MainCmd.PersistentFlags()
	flags.BoolVar(&mainCmdConfig.debug, "debug", false, "enable debug output in logs")
	flags.BoolVarP(&mainCmdConfig.noDereference, "no-dereference", "n", false, "act on symbolic links instead of their targets")
	flags.IntVar(&mainCmdConfig.workers, "workers", xattr.DefaultWorkers, "maximum number of concurrent syscalls, 0 for no limit")

	MainCmd.AddCommand(LSCmd)
	MainCmd.AddCommand(GetCmd)
	MainCmd.AddCommand(SetCmd)
	MainCmd.AddCommand(RMCmd)
	MainCmd.AddCommand(CPCmd)
	MainCmd.SetUsageTemplate(usageTemplate)
}

// newAccessor returns an accessor configured from the global flags.
func newAccessor() *xattr.Accessor {
	return xattr.NewAccessor(xattr.WithWorkers(mainCmdConfig.workers))
}

// newTabwriter provides a common tabwriter with defaults.
func newTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 2, 2, ' ', 0)
}
