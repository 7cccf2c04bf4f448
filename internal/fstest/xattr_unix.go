//go:build linux || darwin || freebsd
// +build linux darwin freebsd

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

package fstest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/containerd/xattr/sysx"
	"golang.org/x/sys/unix"
)

// RequireUserXattrs skips the test when the file system under dir cannot
// hold attributes in the user namespace.
func RequireUserXattrs(t testing.TB, dir string) {
	t.Helper()

	probe := filepath.Join(dir, ".xattr-probe")
	if err := os.WriteFile(probe, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	defer os.Remove(probe)

	if err := sysx.Setxattr(probe, "user.probe", []byte("1")); err != nil {
		if err == unix.ENOTSUP || err == unix.EOPNOTSUPP || err == unix.EPERM {
			t.Skipf("user xattrs not supported under %s: %v", dir, err)
		}
		t.Fatal(err)
	}
}
