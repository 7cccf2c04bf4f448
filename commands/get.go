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
	_ "crypto/sha256"
	"fmt"

	"github.com/containerd/log"
	digest "github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"
)

var (
	getCmdConfig struct {
		digest bool
	}

	GetCmd = &cobra.Command{
		Use:   "get [--digest] <path> <name>",
		Short: "Print the value of an extended attribute.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, name := args[0], args[1]

			value, err := getAttr(newAccessor(), path, name)
			if err != nil {
				return err
			}
			log.L.WithField("path", path).WithField("name", name).Debugf("read %d bytes", len(value))

			if getCmdConfig.digest {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), digest.FromBytes(value))
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", value)
			return err
		},
	}
)

func init() {
	GetCmd.Flags().BoolVar(&getCmdConfig.digest, "digest", false, "print the digest of the value instead of the value")
}
