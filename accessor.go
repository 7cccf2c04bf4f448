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

// Package xattr provides asynchronous access to the extended attributes of
// files. Every operation runs its syscall on a worker goroutine and reports
// the outcome to a completion handler exactly once.
package xattr

import (
	"context"
	"sync"

	"github.com/containerd/xattr/sysx"
	"golang.org/x/sync/semaphore"
)

// DefaultWorkers is the number of syscalls an Accessor runs at once unless
// configured otherwise.
const DefaultWorkers = 4

// Handler types receive the outcome of an operation.
type (
	ListFunc func(names []string, err error)
	GetFunc  func(value []byte, err error)
	DoneFunc func(err error)
)

// Opt configures an Accessor.
type Opt func(a *Accessor)

// WithWorkers bounds the number of syscalls running concurrently. A value of
// zero or less removes the bound.
func WithWorkers(n int) Opt {
	return func(a *Accessor) {
		if n <= 0 {
			a.workers = nil
			return
		}
		a.workers = semaphore.NewWeighted(int64(n))
	}
}

// WithDispatcher routes every completion through dispatch instead of running
// it on the worker goroutine. This lets the caller run handlers on a
// goroutine it owns, for example by sending them down a channel it drains.
func WithDispatcher(dispatch func(func())) Opt {
	return func(a *Accessor) {
		a.dispatch = dispatch
	}
}

// Accessor issues extended attribute operations. The zero value is not
// usable; create one with NewAccessor. An Accessor is safe for concurrent
// use and imposes no ordering between operations.
type Accessor struct {
	workers  *semaphore.Weighted // nil if unbounded
	dispatch func(func())
	inflight sync.WaitGroup
}

// NewAccessor returns an Accessor running at most DefaultWorkers syscalls at
// once.
func NewAccessor(opts ...Opt) *Accessor {
	a := &Accessor{
		workers:  semaphore.NewWeighted(DefaultWorkers),
		dispatch: func(fn func()) { fn() },
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// List reports the names of all extended attributes set on path. A path
// without attributes yields an empty slice.
func (a *Accessor) List(path string, fn ListFunc) {
	a.list("list", path, sysx.Listxattr, fn)
}

// LList is List without following a trailing symbolic link.
func (a *Accessor) LList(path string, fn ListFunc) {
	a.list("llist", path, sysx.LListxattr, fn)
}

// Get reports the value of the attribute name on path.
func (a *Accessor) Get(path, name string, fn GetFunc) {
	a.get("get", path, name, sysx.Getxattr, fn)
}

// LGet is Get without following a trailing symbolic link.
func (a *Accessor) LGet(path, name string, fn GetFunc) {
	a.get("lget", path, name, sysx.LGetxattr, fn)
}

// Set creates the attribute name on path or replaces its value.
func (a *Accessor) Set(path, name string, value []byte, fn DoneFunc) {
	a.set("set", path, name, value, sysx.Setxattr, fn)
}

// LSet is Set without following a trailing symbolic link.
func (a *Accessor) LSet(path, name string, value []byte, fn DoneFunc) {
	a.set("lset", path, name, value, sysx.LSetxattr, fn)
}

// Remove deletes the attribute name from path.
func (a *Accessor) Remove(path, name string, fn DoneFunc) {
	a.remove("remove", path, name, sysx.Removexattr, fn)
}

// LRemove is Remove without following a trailing symbolic link.
func (a *Accessor) LRemove(path, name string, fn DoneFunc) {
	a.remove("lremove", path, name, sysx.LRemovexattr, fn)
}

// Wait blocks until every operation issued so far has completed and handed
// its handler to the dispatcher. With the default dispatcher the handlers
// have returned by then.
func (a *Accessor) Wait() {
	a.inflight.Wait()
}

func (a *Accessor) list(op, path string, listFunc func(string) ([]string, error), fn ListFunc) {
	if fn == nil {
		panic("xattr: " + op + "(path, fn) called with nil fn")
	}
	a.run(func() func() {
		names, err := listFunc(path)
		if err != nil {
			err = newError(op, path, "", err)
		}
		return func() { fn(names, err) }
	})
}

func (a *Accessor) get(op, path, name string, getFunc func(string, string) ([]byte, error), fn GetFunc) {
	if fn == nil {
		panic("xattr: " + op + "(path, name, fn) called with nil fn")
	}
	a.run(func() func() {
		value, err := getFunc(path, name)
		if err != nil {
			err = newError(op, path, name, err)
		}
		return func() { fn(value, err) }
	})
}

func (a *Accessor) set(op, path, name string, value []byte, setFunc func(string, string, []byte) error, fn DoneFunc) {
	if fn == nil {
		panic("xattr: " + op + "(path, name, value, fn) called with nil fn")
	}
	a.run(func() func() {
		err := newError(op, path, name, setFunc(path, name, value))
		return func() { fn(err) }
	})
}

func (a *Accessor) remove(op, path, name string, removeFunc func(string, string) error, fn DoneFunc) {
	if fn == nil {
		panic("xattr: " + op + "(path, name, fn) called with nil fn")
	}
	a.run(func() func() {
		err := newError(op, path, name, removeFunc(path, name))
		return func() { fn(err) }
	})
}

// run executes work on a new goroutine and dispatches the completion it
// returns. The completion is held back until run has returned to the
// initiating call.
func (a *Accessor) run(work func() func()) {
	issued := make(chan struct{})
	defer close(issued)

	a.inflight.Add(1)
	go func() {
		defer a.inflight.Done()

		if a.workers != nil {
			// Acquire only fails on a done context.
			_ = a.workers.Acquire(context.Background(), 1)
		}
		complete := work()
		if a.workers != nil {
			a.workers.Release(1)
		}

		<-issued
		a.dispatch(complete)
	}()
}
