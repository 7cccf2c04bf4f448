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

package sysx

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"
	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func xattrFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "xattr-test")
	if err := os.WriteFile(p, []byte("test"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Setxattr(p, "user.probe", []byte("1")); err != nil {
		if err == unix.ENOTSUP || err == unix.EOPNOTSUPP {
			t.Skipf("user xattrs not supported on %s: %v", filepath.Dir(p), err)
		}
		t.Fatal(err)
	}
	if err := Removexattr(p, "user.probe"); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestSplitNames(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected []string
	}{
		{"", []string{}},
		{"user.foo\x00", []string{"user.foo"}},
		{"user.foo\x00user.lorem\x00", []string{"user.foo", "user.lorem"}},
		{"user.foo\x00\x00user.bar", []string{"user.foo", "user.bar"}},
	} {
		assert.DeepEqual(t, splitNames([]byte(tc.in)), tc.expected)
	}
}

func TestListxattrGrowsBetweenCalls(t *testing.T) {
	names := []byte("user.a\x00")
	calls := 0
	listFunc := func(path string, dest []byte) (int, error) {
		calls++
		if dest == nil {
			return len(names), nil
		}
		// another attribute lands after the first size probe
		if calls == 2 {
			names = []byte("user.a\x00user.bb\x00")
		}
		if len(dest) < len(names) {
			return 0, unix.ERANGE
		}
		return copy(dest, names), nil
	}

	entries, err := listxattrAll("ignored", listFunc)
	assert.NilError(t, err)
	assert.DeepEqual(t, entries, []string{"user.a", "user.bb"})
	assert.Equal(t, calls, 4)
}

func TestGetxattrGivesUpAfterProbes(t *testing.T) {
	size := 1
	getFunc := func(path, attr string, dest []byte) (int, error) {
		if dest == nil {
			return size, nil
		}
		size++
		return 0, unix.ERANGE
	}

	_, err := getxattrAll("ignored", "user.foo", getFunc)
	assert.Equal(t, err, error(unix.ERANGE))
}

func TestXattrRoundTrip(t *testing.T) {
	p := xattrFile(t)

	names, err := Listxattr(p)
	assert.NilError(t, err)
	assert.Check(t, is.Len(names, 0))

	assert.NilError(t, Setxattr(p, "user.foo", []byte("bar")))
	assert.NilError(t, Setxattr(p, "user.empty", nil))

	value, err := Getxattr(p, "user.foo")
	assert.NilError(t, err)
	assert.Equal(t, string(value), "bar")

	value, err = Getxattr(p, "user.empty")
	assert.NilError(t, err)
	assert.Check(t, value != nil)
	assert.Check(t, is.Len(value, 0))

	assert.NilError(t, Removexattr(p, "user.foo"))
	_, err = Getxattr(p, "user.foo")
	assert.Equal(t, err, error(ENODATA))

	err = Removexattr(p, "user.foo")
	assert.Equal(t, err, error(ENODATA))
}

func TestXattrMissingPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nonexisting")

	_, err := Listxattr(p)
	assert.Equal(t, err, error(ENOENT))
	_, err = Getxattr(p, "user.foo")
	assert.Equal(t, err, error(ENOENT))
	assert.Equal(t, Setxattr(p, "user.foo", []byte("bar")), error(ENOENT))
	assert.Equal(t, Removexattr(p, "user.foo"), error(ENOENT))
}
