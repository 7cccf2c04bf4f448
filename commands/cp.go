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
	"github.com/containerd/xattr"
	"github.com/spf13/cobra"
)

var (
	cpCmdConfig struct {
		excludes []string
	}

	CPCmd = &cobra.Command{
		Use:   "cp [--exclude <name>]... <src> <dst>",
		Short: "Copy the extended attributes of one file onto another.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]

			if err := xattr.Copy(dst, src, xattr.WithExclude(cpCmdConfig.excludes...)); err != nil {
				return err
			}
			log.L.WithField("src", src).WithField("dst", dst).Debug("attributes copied")
			return nil
		},
	}
)

func init() {
	CPCmd.Flags().StringArrayVar(&cpCmdConfig.excludes, "exclude", nil, "attribute name to skip, may be repeated")
}
