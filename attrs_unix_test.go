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

package xattr

import (
	"path/filepath"
	"testing"

	"github.com/containerd/xattr/internal/fstest"
	"gotest.tools/v3/assert"
)

func TestReadAll(t *testing.T) {
	root := t.TempDir()
	fstest.RequireUserXattrs(t, root)
	assert.NilError(t, fstest.Apply(
		fstest.CreateDir("dir", 0o755),
		fstest.SetXAttr("dir", "user.test-1", "one"),
		fstest.SetXAttr("dir", "user.test-2", "two"),
		fstest.Symlink("dir", "link"),
	).Apply(root))

	m, err := ReadAll(filepath.Join(root, "link"))
	assert.NilError(t, err)
	assert.DeepEqual(t, m, map[string][]byte{
		"user.test-1": []byte("one"),
		"user.test-2": []byte("two"),
	})

	m, err = LReadAll(filepath.Join(root, "link"))
	assert.NilError(t, err)
	_, ok := m["user.test-1"]
	assert.Check(t, !ok)

	_, err = ReadAll(filepath.Join(root, "missing"))
	assert.Equal(t, KindOf(err), NotFound)
}

func TestCopyWithExcludes(t *testing.T) {
	src := t.TempDir()
	fstest.RequireUserXattrs(t, src)
	if err := fstest.Apply(
		fstest.CreateFile("f", []byte("content"), 0o644),
		fstest.SetXAttr("f", "user.test-1", "one"),
		fstest.SetXAttr("f", "user.test-2", "two"),
		fstest.SetXAttr("f", "user.test-x", "three-four-five"),
	).Apply(src); err != nil {
		t.Fatal(err)
	}
	srcFile := filepath.Join(src, "f")

	t.Run("none", func(t *testing.T) {
		dst := t.TempDir()
		assert.NilError(t, fstest.CreateFile("f", nil, 0o644).Apply(dst))
		dstFile := filepath.Join(dst, "f")

		assert.NilError(t, Copy(dstFile, srcFile, WithExclude()))

		m, err := ReadAll(dstFile)
		assert.NilError(t, err)
		assert.Equal(t, string(m["user.test-1"]), "one")
		assert.Equal(t, string(m["user.test-2"]), "two")
		assert.Equal(t, string(m["user.test-x"]), "three-four-five")
	})

	t.Run("some", func(t *testing.T) {
		dst := t.TempDir()
		assert.NilError(t, fstest.CreateFile("f", nil, 0o644).Apply(dst))
		dstFile := filepath.Join(dst, "f")

		assert.NilError(t, Copy(dstFile, srcFile, WithExclude("user.test-x")))

		m, err := ReadAll(dstFile)
		assert.NilError(t, err)
		assert.Equal(t, string(m["user.test-1"]), "one")
		assert.Equal(t, string(m["user.test-2"]), "two")
		_, ok := m["user.test-x"]
		assert.Check(t, !ok)
	})

	t.Run("missing destination", func(t *testing.T) {
		err := Copy(filepath.Join(t.TempDir(), "missing"), srcFile)
		assert.ErrorContains(t, err, "failed to set xattr")
		assert.Equal(t, KindOf(err), NotFound)
	})
}
