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
	"sort"

	"github.com/containerd/xattr/sysx"
	"github.com/pkg/errors"
)

// ReadAll returns all of the extended attributes for the file at path,
// following symbolic links.
func ReadAll(path string) (map[string][]byte, error) {
	return readAll("list", "get", path, sysx.Listxattr, sysx.Getxattr)
}

// LReadAll returns all of the extended attributes for the file at path
// without following symbolic links.
func LReadAll(path string) (map[string][]byte, error) {
	return readAll("llist", "lget", path, sysx.LListxattr, sysx.LGetxattr)
}

func readAll(listOp, getOp, path string, listFunc func(string) ([]string, error), getFunc func(string, string) ([]byte, error)) (map[string][]byte, error) {
	names, err := listFunc(path)
	if err != nil {
		return nil, newError(listOp, path, "", err)
	}

	sort.Strings(names)
	m := make(map[string][]byte, len(names))

	for _, name := range names {
		value, err := getFunc(path, name)
		if err != nil {
			return nil, newError(getOp, path, name, err)
		}
		m[name] = value
	}

	return m, nil
}

// CopyOpt configures Copy.
type CopyOpt func(*copyOpts) error

type copyOpts struct {
	excludes map[string]struct{}
}

// WithExclude skips the named attributes when copying.
func WithExclude(names ...string) CopyOpt {
	return func(o *copyOpts) error {
		for _, name := range names {
			o.excludes[name] = struct{}{}
		}
		return nil
	}
}

// Copy copies the extended attributes of src onto dst. Neither path is
// dereferenced if it is a symbolic link. Attributes already on dst that src
// does not carry are left alone, and attributes copied before a failure are
// not rolled back.
func Copy(dst, src string, opts ...CopyOpt) error {
	o := copyOpts{
		excludes: map[string]struct{}{},
	}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	names, err := sysx.LListxattr(src)
	if err != nil {
		return errors.Wrapf(newError("llist", src, "", err), "failed to list xattrs on %s", src)
	}
	for _, name := range names {
		if _, exclude := o.excludes[name]; exclude {
			continue
		}
		data, err := sysx.LGetxattr(src, name)
		if err != nil {
			return errors.Wrapf(newError("lget", src, name, err), "failed to get xattr %q on %s", name, src)
		}
		if err := sysx.LSetxattr(dst, name, data); err != nil {
			return errors.Wrapf(newError("lset", dst, name, err), "failed to set xattr %q on %s", name, dst)
		}
	}

	return nil
}
