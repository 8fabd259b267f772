// Copyright 2026 The CSA Authors. All rights reserved.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package errors_test

import (
	"bytes"
	"encoding/gob"
	goerrors "errors"
	"fmt"
	"os"
	"testing"

	fuzz "github.com/google/gofuzz"

	"github.com/Guardianofgotham/csa/errors"
)

// generate random errors and test encoding, etc. (fuzz)

func TestError(t *testing.T) {
	err := errors.E(errors.EmptySet, "min", "called on empty set")
	if got, want := err.Error(), "min called on empty set: interval set is empty"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if !errors.Is(errors.EmptySet, err) {
		t.Errorf("error %v should be EmptySet", err)
	}
}

func TestErrorChaining(t *testing.T) {
	err := errors.E("overlapping supports", errors.UnsupportedOverlap)
	err = errors.E(errors.Fatal, "cannot sum", err)
	want := "cannot sum: multiset sum of overlapping interval-set masks is not supported (fatal):\n\toverlapping supports"
	if got := err.Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

type temporaryError string

func (t temporaryError) Error() string   { return string(t) }
func (t temporaryError) Temporary() bool { return true }

func TestTemporary(t *testing.T) {
	for _, c := range []struct {
		err       error
		temporary bool
	}{
		{goerrors.New("no idea"), false},
		{temporaryError(""), true},
		{errors.E(temporaryError(""), errors.ArityMismatch), true},
		{errors.E(errors.Temporary, "retry me"), true},
		{errors.E("no idea"), false},
		{errors.E(errors.Fatal, "fatal error"), false},
		{errors.E(errors.Retriable, "this one you can retry"), true},
		{errors.E(fmt.Errorf("test")), false},
	} {
		e := errors.Recover(c.err)
		if got, want := e.Temporary(), c.temporary; got != want {
			t.Errorf("error %v: got %v, want %v", c.err, got, want)
		}
	}
}

func TestGobEncoding(t *testing.T) {
	err := errors.E("failed to build mask", errors.TypeMismatch)
	err = errors.E(errors.Fatal, "cannot proceed", err)

	var b bytes.Buffer
	if err := gob.NewEncoder(&b).Encode(errors.Recover(err)); err != nil {
		t.Fatal(err)
	}
	e2 := new(errors.Error)
	if err := gob.NewDecoder(&b).Decode(e2); err != nil {
		t.Fatal(err)
	}
	if !errors.Match(err, e2) {
		t.Errorf("error %v does not match %v", err, e2)
	}
}

func TestGobEncodingFuzz(t *testing.T) {
	fz := fuzz.New().NilChance(0).Funcs(
		func(e *errors.Error, c fuzz.Continue) {
			c.Fuzz(&e.Kind)
			c.Fuzz(&e.Severity)
			c.Fuzz(&e.Message)
			if c.Float32() < 0.8 {
				var e2 errors.Error
				c.Fuzz(&e2)
				e.Err = &e2
			}
		},
	)

	const n = 1000
	for i := 0; i < n; i++ {
		var err errors.Error
		fz.Fuzz(&err)
		var b bytes.Buffer
		if err := gob.NewEncoder(&b).Encode(errors.Recover(&err)); err != nil {
			t.Fatal(err)
		}
		e2 := new(errors.Error)
		if err := gob.NewDecoder(&b).Decode(e2); err != nil {
			t.Fatal(err)
		}
		if !errors.Match(&err, e2) {
			t.Errorf("error %v does not match %v", &err, e2)
		}
	}
}

func TestMessage(t *testing.T) {
	for _, c := range []struct {
		err     error
		message string
	}{
		{errors.E("hello"), "hello"},
		{errors.E("hello", "world"), "hello world"},
	} {
		if got, want := c.err.Error(), c.message; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}

func TestStdInterop(t *testing.T) {
	err := errors.E(errors.Invalid, "bad window", os.ErrInvalid)
	if !errors.Is(errors.Invalid, err) {
		t.Errorf("error %v should be Invalid", err)
	}
	if !goerrors.Is(err, os.ErrInvalid) {
		t.Errorf("error %v should unwrap to os.ErrInvalid", err)
	}
}
