// Copyright 2017 The go-ethereum Authors
// This file is part of the egihash library.
//
// The egihash library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The egihash library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the egihash library. If not, see <http://www.gnu.org/licenses/>.

package ethash

import (
	"errors"
	"fmt"
)

// ErrCancelled is returned by any long-running operation whose Observer
// returned false.
// ErrCancelled는 Observer가 false를 반환했을때의 모든 장시간작업에서 반환된다
var ErrCancelled = errors.New("ethash: operation cancelled by observer")

// ErrHashPrimitiveFailure is the error kind for an external Keccak primitive
// that produced output of an unexpected size (§4.10). The hashing helpers in
// hasher.go do not check digest sizes, so no operation in this package
// returns it.
var ErrHashPrimitiveFailure = errors.New("ethash: hash primitive returned unexpected output size")

// ErrIoFailure wraps an underlying I/O error encountered while reading or
// writing a DAG file, distinguishing it from a CorruptDagError (the bytes
// were readable but invalid) per §4.10.
type ErrIoFailure struct {
	Err error
}

func (e *ErrIoFailure) Error() string { return fmt.Sprintf("ethash: i/o failure: %v", e.Err) }
func (e *ErrIoFailure) Unwrap() error { return e.Err }

// CorruptDagReason discriminates the ways a DAG file can fail validation,
// per the single "corrupt DAG" error kind with a discriminator sub-field
// from §4.10.
type CorruptDagReason int

const (
	ReasonBadMagic CorruptDagReason = iota
	ReasonBadVersion
	ReasonBadSizes
	ReasonShortFile
)

func (r CorruptDagReason) String() string {
	switch r {
	case ReasonBadMagic:
		return "bad_magic"
	case ReasonBadVersion:
		return "bad_version"
	case ReasonBadSizes:
		return "bad_sizes"
	case ReasonShortFile:
		return "short_file"
	default:
		return "unknown"
	}
}

// CorruptDagError reports that a DAG file failed a format-level validation
// check on load. Message is a short, log-oriented description; it is not
// intended to be parsed (§7: "a short message field intended for logs, not
// parsing").
type CorruptDagError struct {
	Reason  CorruptDagReason
	Message string
}

func (e *CorruptDagError) Error() string {
	return fmt.Sprintf("ethash: corrupt dag (%s): %s", e.Reason, e.Message)
}

func corruptDag(reason CorruptDagReason, format string, args ...interface{}) *CorruptDagError {
	return &CorruptDagError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
