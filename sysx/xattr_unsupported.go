//go:build windows
// +build windows

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
	"syscall"

	"github.com/pkg/errors"
)

// ErrNotSupported is returned by every call on platforms without extended
// attributes.
var ErrNotSupported = errors.New("extended attributes not supported")

const (
	ENOENT  = syscall.ENOENT
	ENODATA = syscall.ENODATA
)

func Listxattr(path string) ([]string, error) {
	return nil, ErrNotSupported
}

func LListxattr(path string) ([]string, error) {
	return nil, ErrNotSupported
}

func Getxattr(path, attr string) ([]byte, error) {
	return nil, ErrNotSupported
}

func LGetxattr(path, attr string) ([]byte, error) {
	return nil, ErrNotSupported
}

func Setxattr(path, attr string, data []byte) error {
	return ErrNotSupported
}

func LSetxattr(path, attr string, data []byte) error {
	return ErrNotSupported
}

func Removexattr(path, attr string) error {
	return ErrNotSupported
}

func LRemovexattr(path, attr string) error {
	return ErrNotSupported
}
