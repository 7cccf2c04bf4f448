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

// Package fstest provides appliers that lay out files and extended
// attributes under a test root.
package fstest

import (
	"os"
	"path/filepath"

	"github.com/containerd/xattr/sysx"
)

// Applier applies a single file system change to a root.
type Applier interface {
	Apply(root string) error
}

type applyFn func(root string) error

func (a applyFn) Apply(root string) error {
	return a(root)
}

// CreateFile returns a file applier which creates a file as the
// provided name with the given content and permission.
func CreateFile(name string, content []byte, perm os.FileMode) Applier {
	return applyFn(func(root string) error {
		fullPath := filepath.Join(root, name)
		if err := os.WriteFile(fullPath, content, perm); err != nil {
			return err
		}
		return os.Chmod(fullPath, perm)
	})
}

// CreateDir returns a directory applier to create the directory with
// the provided name and permission.
func CreateDir(name string, perm os.FileMode) Applier {
	return applyFn(func(root string) error {
		fullPath := filepath.Join(root, name)
		if err := os.MkdirAll(fullPath, perm); err != nil {
			return err
		}
		return os.Chmod(fullPath, perm)
	})
}

// Symlink returns a symlink applier to create a symlink at newname that
// points to oldname.
func Symlink(oldname, newname string) Applier {
	return applyFn(func(root string) error {
		return os.Symlink(oldname, filepath.Join(root, newname))
	})
}

// SetXAttr returns an applier which sets the extended attribute name on
// the file at path.
func SetXAttr(name, key, value string) Applier {
	return applyFn(func(root string) error {
		return sysx.Setxattr(filepath.Join(root, name), key, []byte(value))
	})
}

// Apply returns a new applier from the given appliers.
func Apply(appliers ...Applier) Applier {
	return applyFn(func(root string) error {
		for _, a := range appliers {
			if err := a.Apply(root); err != nil {
				return err
			}
		}
		return nil
	})
}
