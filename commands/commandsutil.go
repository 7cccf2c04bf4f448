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
	"github.com/containerd/xattr"
)

// The helpers below wait for a single completion, honoring the
// --no-dereference flag.

func listAttrs(a *xattr.Accessor, path string) ([]string, error) {
	type result struct {
		names []string
		err   error
	}
	ch := make(chan result, 1)
	fn := func(names []string, err error) {
		ch <- result{names, err}
	}
	if mainCmdConfig.noDereference {
		a.LList(path, fn)
	} else {
		a.List(path, fn)
	}
	r := <-ch
	return r.names, r.err
}

func getAttr(a *xattr.Accessor, path, name string) ([]byte, error) {
	type result struct {
		value []byte
		err   error
	}
	ch := make(chan result, 1)
	fn := func(value []byte, err error) {
		ch <- result{value, err}
	}
	if mainCmdConfig.noDereference {
		a.LGet(path, name, fn)
	} else {
		a.Get(path, name, fn)
	}
	r := <-ch
	return r.value, r.err
}

func setAttr(a *xattr.Accessor, path, name string, value []byte) error {
	ch := make(chan error, 1)
	fn := func(err error) {
		ch <- err
	}
	if mainCmdConfig.noDereference {
		a.LSet(path, name, value, fn)
	} else {
		a.Set(path, name, value, fn)
	}
	return <-ch
}

func removeAttr(a *xattr.Accessor, path, name string) error {
	ch := make(chan error, 1)
	fn := func(err error) {
		ch <- err
	}
	if mainCmdConfig.noDereference {
		a.LRemove(path, name, fn)
	} else {
		a.Remove(path, name, fn)
	}
	return <-ch
}
