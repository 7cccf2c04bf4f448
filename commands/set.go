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
	"github.com/containerd/log"
	"github.com/spf13/cobra"
)

var SetCmd = &cobra.Command{
	Use:   "set <path> <name> <value>",
	Short: "Create or replace an extended attribute.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name, value := args[0], args[1], args[2]

		if err := setAttr(newAccessor(), path, name, []byte(value)); err != nil {
			return err
		}
		log.L.WithField("path", path).WithField("name", name).Debug("attribute set")
		return nil
	},
}

var RMCmd = &cobra.Command{
	Use:     "rm <path> <name>",
	Aliases: []string{"remove"},
	Short:   "Remove an extended attribute.",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, name := args[0], args[1]

		if err := removeAttr(newAccessor(), path, name); err != nil {
			return err
		}
		log.L.WithField("path", path).WithField("name", name).Debug("attribute removed")
		return nil
	},
}
