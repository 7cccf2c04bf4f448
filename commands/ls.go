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
	"fmt"
	"sort"

	"github.com/containerd/log"
	"github.com/dustin/go-humanize"
	digest "github.com/opencontainers/go-digest"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type lsEntry struct {
	name   string
	size   int
	digest digest.Digest
}

var (
	lsCmdConfig struct {
		long bool
	}

	LSCmd = &cobra.Command{
		Use:   "ls [-l] <path>...",
		Short: "List the extended attributes of files.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newAccessor()
			entries := make([][]lsEntry, len(args))

			var g errgroup.Group
			for i, p := range args {
				i, p := i, p
				g.Go(func() error {
					names, err := listAttrs(a, p)
					if err != nil {
						return err
					}
					log.L.WithField("path", p).Debugf("listed %d attributes", len(names))

					sort.Strings(names)
					es := make([]lsEntry, len(names))
					for j, name := range names {
						es[j].name = name
						if !lsCmdConfig.long {
							continue
						}
						value, err := getAttr(a, p, name)
						if err != nil {
							return err
						}
						es[j].size = len(value)
						es[j].digest = digest.FromBytes(value)
					}
					entries[i] = es
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			w := newTabwriter(cmd.OutOrStdout())
			for i, p := range args {
				if len(args) > 1 {
					if i > 0 {
						fmt.Fprintln(w)
					}
					fmt.Fprintf(w, "%s:\n", p)
				}
				for _, e := range entries[i] {
					if lsCmdConfig.long {
						fmt.Fprintf(w, "%v\t%v\t%v\n", e.name, humanize.Bytes(uint64(e.size)), e.digest)
					} else {
						fmt.Fprintln(w, e.name)
					}
				}
			}
			return w.Flush()
		},
	}
)

func init() {
	LSCmd.Flags().BoolVarP(&lsCmdConfig.long, "long", "l", false, "show the size and digest of each value")
}
