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
	"fmt"
	"syscall"

	"github.com/containerd/xattr/sysx"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound matches errors for operations on a path that does not
	// exist.
	ErrNotFound = fmt.Errorf("not found")
	// ErrNoData matches errors for attributes that are not set on an
	// existing path.
	ErrNoData = fmt.Errorf("no data")
)

// Kind classifies an operation failure.
type Kind int

const (
	// Other is any failure that is neither NotFound nor NoData, such as
	// permission denied or a filesystem without xattr support.
	Other Kind = iota
	// NotFound means the target path is missing.
	NotFound
	// NoData means the attribute is missing on an existing path.
	NoData
)

func (k Kind) String() string {
	switch k {
	case NotFound:
		return "NotFound"
	case NoData:
		return "NoData"
	default:
		return "Other"
	}
}

// kinds maps platform error numbers to their Kind. Anything not listed is
// Other.
var kinds = map[syscall.Errno]Kind{
	sysx.ENOENT:  NotFound,
	sysx.ENODATA: NoData,
}

var codes = map[Kind]string{
	NotFound: "ENOENT",
	NoData:   "ENODATA",
}

// Error records a failed attribute operation along with the underlying
// system error.
type Error struct {
	Op   string
	Path string
	Name string
	Kind Kind
	Err  error
}

func newError(op, path, name string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{
		Op:   op,
		Path: path,
		Name: name,
		Kind: classify(err),
		Err:  err,
	}
}

func (e *Error) Error() string {
	if e.Name == "" {
		return e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Name + " " + e.Path + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether the error is of the kind denoted by target, allowing
// errors.Is(err, ErrNotFound) and errors.Is(err, ErrNoData).
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == NotFound
	case ErrNoData:
		return e.Kind == NoData
	}
	return false
}

// Errno returns the system error number behind the failure, or zero if the
// failure did not come from a syscall.
func (e *Error) Errno() syscall.Errno {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return errno
	}
	return 0
}

// Code returns the portable error code name ("ENOENT" or "ENODATA") for
// classified failures and the empty string for Other.
func (e *Error) Code() string {
	return codes[e.Kind]
}

// KindOf returns the Kind of err. Errors that did not originate from this
// package are classified by their errno.
func KindOf(err error) Kind {
	var xerr *Error
	if errors.As(err, &xerr) {
		return xerr.Kind
	}
	return classify(err)
}

func classify(err error) Kind {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		if kind, ok := kinds[errno]; ok {
			return kind
		}
	}
	return Other
}
