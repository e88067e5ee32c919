package artic

import "fmt"

// ErrorKind classifies a failed search request.
type ErrorKind int

const (
	KindInvalidURL  ErrorKind = iota // base URL could not be turned into a request URL
	KindBadResponse                  // server answered outside 2xx
	KindDecoding                     // body did not match the expected envelope
	KindNetwork                      // request never produced a response
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidURL:
		return "invalid url"
	case KindBadResponse:
		return "bad response"
	case KindDecoding:
		return "decoding"
	case KindNetwork:
		return "network"
	}
	return "unknown"
}

// Error is returned by Client for every failed request.
type Error struct {
	Kind   ErrorKind
	Status int    // HTTP status, set for KindBadResponse
	Detail string // URL, body excerpt or transport message
	Err    error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindBadResponse:
		return fmt.Sprintf("artic: bad response: status %d", e.Status)
	case KindInvalidURL, KindDecoding, KindNetwork:
		return fmt.Sprintf("artic: %s: %s", e.Kind, e.Detail)
	}
	return "artic: " + e.Detail
}

func (e *Error) Unwrap() error {
	return e.Err
}
