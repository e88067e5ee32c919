// Package apperr defines the application-level error returned by a failed search.
package apperr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/llehouerou/artpick/internal/artic"
)

// Kind classifies an application error.
type Kind int

const (
	Internal Kind = iota
	InvalidURL
	BadResponse
	DecodingFailure
	NetworkFailure
)

func (k Kind) String() string {
	switch k {
	case InvalidURL:
		return "invalid url"
	case BadResponse:
		return "bad response"
	case DecodingFailure:
		return "decoding failure"
	case NetworkFailure:
		return "network failure"
	case Internal:
		return "internal"
	}
	return "unknown"
}

// Error is the single opaque error surfaced to the UI.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

// Description returns a human-readable, multi-line explanation of the error.
func (e *Error) Description() string {
	switch e.Kind {
	case InvalidURL:
		return "An error occurred on the network call due to invalid url:\n" + e.Detail
	case BadResponse:
		return "An error occurred on the network call due to bad response:\nStatus " + e.Detail
	case DecodingFailure:
		return "An error occurred on the network call due to bad decoding:\n" + e.Detail
	case NetworkFailure:
		return "An error occurred on the network call:\n" + e.Detail
	case Internal:
		return "An internal error occurred:\n" + e.Detail
	}
	return e.Detail
}

// FromTransport translates a search client error into an application error.
// Errors that are not *artic.Error become Internal. A nil error maps to nil.
func FromTransport(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	var terr *artic.Error
	if !errors.As(err, &terr) {
		return &Error{Kind: Internal, Detail: err.Error()}
	}

	switch terr.Kind {
	case artic.KindInvalidURL:
		return &Error{Kind: InvalidURL, Detail: terr.Detail}
	case artic.KindBadResponse:
		return &Error{Kind: BadResponse, Detail: strconv.Itoa(terr.Status)}
	case artic.KindDecoding:
		return &Error{Kind: DecodingFailure, Detail: terr.Detail}
	case artic.KindNetwork:
		return &Error{Kind: NetworkFailure, Detail: terr.Detail}
	}
	return &Error{Kind: Internal, Detail: terr.Error()}
}

// Is reports whether err is an application error of the given kind.
func Is(err error, kind Kind) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Kind == kind
}
