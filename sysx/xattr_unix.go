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

// Package sysx wraps the extended attribute syscalls of the host.
package sysx

import (
	"bytes"

	"golang.org/x/sys/unix"
)

// maxSizeProbes bounds how often a list or get re-reads the required buffer
// size when the attributes keep growing underneath it.
const maxSizeProbes = 100

// ENOENT is returned when the target path does not exist.
const ENOENT = unix.ENOENT

// Listxattr calls syscall listxattr and splits the result into names.
func Listxattr(path string) ([]string, error) {
	return listxattrAll(path, unix.Listxattr)
}

// LListxattr calls syscall llistxattr and splits the result into names.
func LListxattr(path string) ([]string, error) {
	return listxattrAll(path, unix.Llistxattr)
}

// Getxattr calls syscall getxattr
func Getxattr(path, attr string) ([]byte, error) {
	return getxattrAll(path, attr, unix.Getxattr)
}

// LGetxattr calls syscall lgetxattr
func LGetxattr(path, attr string) ([]byte, error) {
	return getxattrAll(path, attr, unix.Lgetxattr)
}

// Setxattr calls syscall setxattr. The attribute is created or replaced.
func Setxattr(path, attr string, data []byte) error {
	return unix.Setxattr(path, attr, data, 0)
}

// LSetxattr calls syscall lsetxattr. The attribute is created or replaced.
func LSetxattr(path, attr string, data []byte) error {
	return unix.Lsetxattr(path, attr, data, 0)
}

// Removexattr calls syscall removexattr
func Removexattr(path, attr string) error {
	return unix.Removexattr(path, attr)
}

// LRemovexattr calls syscall lremovexattr
func LRemovexattr(path, attr string) error {
	return unix.Lremovexattr(path, attr)
}

func listxattrAll(path string, listFunc func(string, []byte) (int, error)) ([]string, error) {
	var p []byte // nil on first execution

	for i := 0; i < maxSizeProbes; i++ {
		n, err := listFunc(path, p) // nil buffer gets the size.
		if err != nil {
			// names were added between the two calls
			if err == unix.ERANGE && p != nil {
				p = nil
				continue
			}
			return nil, err
		}

		if p == nil {
			if n == 0 {
				return []string{}, nil
			}
			p = make([]byte, n)
			continue
		}

		return splitNames(p[:n]), nil
	}

	return nil, unix.ERANGE
}

func getxattrAll(path, attr string, getFunc func(string, string, []byte) (int, error)) ([]byte, error) {
	var p []byte

	for i := 0; i < maxSizeProbes; i++ {
		n, err := getFunc(path, attr, p)
		if err != nil {
			// value grew between the two calls
			if err == unix.ERANGE && p != nil {
				p = nil
				continue
			}
			return nil, err
		}

		if p == nil {
			if n == 0 {
				return []byte{}, nil
			}
			p = make([]byte, n)
			continue
		}

		return p[:n], nil
	}

	return nil, unix.ERANGE
}

// splitNames splits the NUL separated name list returned by listxattr.
func splitNames(p []byte) []string {
	ps := bytes.Split(bytes.TrimSuffix(p, []byte{0}), []byte{0})
	entries := make([]string, 0, len(ps))
	for _, p := range ps {
		if len(p) > 0 {
			entries = append(entries, string(p))
		}
	}
	return entries
}
