// Package scenario holds scripted cache sessions together with the dump
// expected after every step.
package scenario

import (
	"errors"
	"fmt"
)

// ErrMismatch is returned by Run when at least one step failed.
var ErrMismatch = errors.New("scenario mismatch")

// Op is the cache call a step makes.
type Op uint8

const (
	// OpDump only inspects the cache.
	OpDump Op = iota

	// OpPut calls Put(Key, Value).
	OpPut

	// OpGet calls Get(Key) and expects Found and, on a hit, Value.
	OpGet
)

// Step is one scripted call and the dump expected after it.
type Step struct {
	Op    Op
	Key   int
	Value int
	Found bool
	Want  string
}

// String renders the call made by the step.
func (s Step) String() string {
	switch s.Op {
	case OpPut:
		return fmt.Sprintf("put(%d,%d)", s.Key, s.Value)
	case OpGet:
		return fmt.Sprintf("get(%d)", s.Key)
	default:
		return "dump"
	}
}

// Cache is the part of a cache a scenario drives.
type Cache interface {
	Put(key int, value int)
	Get(key int) (*int, bool)
	String() string
}

// BasicCapacity is the capacity Basic is written for.
const BasicCapacity = 4

// Basic fills a cache of BasicCapacity, forces one eviction, then checks a
// hit, a miss and an in-place update.
func Basic() []Step {
	return []Step{
		{Op: OpDump, Want: ""},
		{Op: OpPut, Key: 10, Value: 100, Want: "{10,100}"},
		{Op: OpPut, Key: 20, Value: 200, Want: "{20,200},{10,100}"},
		{Op: OpPut, Key: 30, Value: 300, Want: "{30,300},{20,200},{10,100}"},
		{Op: OpPut, Key: 40, Value: 400, Want: "{40,400},{30,300},{20,200},{10,100}"},
		{Op: OpPut, Key: 50, Value: 500, Want: "{50,500},{40,400},{30,300},{20,200}"},
		{Op: OpGet, Key: 40, Value: 400, Found: true, Want: "{40,400},{50,500},{30,300},{20,200}"},
		{Op: OpGet, Key: 99, Found: false, Want: "{40,400},{50,500},{30,300},{20,200}"},
		{Op: OpPut, Key: 30, Value: 301, Want: "{30,301},{40,400},{50,500},{20,200}"},
	}
}

// Result is the outcome of one step.
type Result struct {
	Step   Step
	Actual string

	// Err describes a Get whose outcome differed from the script.
	Err error
}

// Pass reports whether the step behaved as scripted.
func (r Result) Pass() bool {
	return r.Err == nil && r.Actual == r.Step.Want
}

// Run plays steps against c, handing every result to report. It keeps going
// after a failure and returns ErrMismatch if any step failed.
func Run(c Cache, steps []Step, report func(Result)) error {
	failed := 0
	for _, s := range steps {
		r := Result{Step: s}

		switch s.Op {
		case OpPut:
			c.Put(s.Key, s.Value)

		case OpGet:
			v, ok := c.Get(s.Key)
			switch {
			case ok != s.Found:
				r.Err = fmt.Errorf("%v: found=%v, want %v", s, ok,
					s.Found)
			case ok && *v != s.Value:
				r.Err = fmt.Errorf("%v: value=%d, want %d", s, *v,
					s.Value)
			}
		}

		r.Actual = c.String()
		if !r.Pass() {
			failed++
		}
		if report != nil {
			report(r)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d steps failed", ErrMismatch,
			failed, len(steps))
	}
	return nil
}
