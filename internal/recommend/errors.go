// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"

	"github.com/tomtom215/reelmatch/internal/corpus"
)

// Kind classifies engine failures.
type Kind int

const (
	KindInternal Kind = iota
	KindCorpusUnavailable
	KindItemNotFound
	KindInvalidSpaceState
	KindInvalidRequest
)

// String returns the kind's machine-readable name.
func (k Kind) String() string {
	switch k {
	case KindCorpusUnavailable:
		return "corpus_unavailable"
	case KindItemNotFound:
		return "item_not_found"
	case KindInvalidSpaceState:
		return "invalid_space_state"
	case KindInvalidRequest:
		return "invalid_request"
	default:
		return "internal"
	}
}

// Sentinel errors for errors.Is checks against *Error values.
var (
	ErrCorpusUnavailable = corpus.ErrCorpusUnavailable
	ErrItemNotFound      = errors.New("item not found")
	ErrInvalidSpaceState = errors.New("vector space used before fit")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInternal          = errors.New("internal error")
)

// Error is the structured failure returned by Engine operations.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.sentinel().Error()
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op != "" {
		return e.Op + ": " + msg
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	return target == e.sentinel()
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindCorpusUnavailable:
		return ErrCorpusUnavailable
	case KindItemNotFound:
		return ErrItemNotFound
	case KindInvalidSpaceState:
		return ErrInvalidSpaceState
	case KindInvalidRequest:
		return ErrInvalidRequest
	default:
		return ErrInternal
	}
}

// KindOf classifies any error returned by this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrCorpusUnavailable):
		return KindCorpusUnavailable
	case errors.Is(err, ErrItemNotFound):
		return KindItemNotFound
	case errors.Is(err, ErrInvalidSpaceState):
		return KindInvalidSpaceState
	case errors.Is(err, ErrInvalidRequest):
		return KindInvalidRequest
	default:
		return KindInternal
	}
}

// wrap converts err into an *Error for op, keeping an existing kind.
func wrap(op string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		if e.Op == "" {
			copied := *e
			copied.Op = op
			return &copied
		}
		return e
	}
	return &Error{Kind: KindOf(err), Op: op, Err: err}
}
