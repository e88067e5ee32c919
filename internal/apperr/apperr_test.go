package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/llehouerou/artpick/internal/artic"
)

func TestFromTransport(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   Kind
		wantDetail string
	}{
		{
			name:       "invalid url",
			err:        &artic.Error{Kind: artic.KindInvalidURL, Detail: "://x/api"},
			wantKind:   InvalidURL,
			wantDetail: "://x/api",
		},
		{
			name:       "bad response carries status",
			err:        &artic.Error{Kind: artic.KindBadResponse, Status: 500, Detail: "boom"},
			wantKind:   BadResponse,
			wantDetail: "500",
		},
		{
			name:       "decoding",
			err:        &artic.Error{Kind: artic.KindDecoding, Detail: "bad json"},
			wantKind:   DecodingFailure,
			wantDetail: "bad json",
		},
		{
			name:       "network",
			err:        &artic.Error{Kind: artic.KindNetwork, Detail: "connection refused"},
			wantKind:   NetworkFailure,
			wantDetail: "connection refused",
		},
		{
			name:       "wrapped transport error",
			err:        fmt.Errorf("search: %w", &artic.Error{Kind: artic.KindNetwork, Detail: "timeout"}),
			wantKind:   NetworkFailure,
			wantDetail: "timeout",
		},
		{
			name:       "unknown error is internal",
			err:        errors.New("something else"),
			wantKind:   Internal,
			wantDetail: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromTransport(tt.err)
			if got == nil {
				t.Fatal("FromTransport returned nil")
			}
			if got.Kind != tt.wantKind {
				t.Errorf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if got.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", got.Detail, tt.wantDetail)
			}
		})
	}
}

func TestFromTransport_Nil(t *testing.T) {
	if got := FromTransport(nil); got != nil {
		t.Errorf("FromTransport(nil) = %v, want nil", got)
	}
}

func TestFromTransport_PassesThroughAppError(t *testing.T) {
	orig := &Error{Kind: BadResponse, Detail: "404"}
	if got := FromTransport(orig); got != orig {
		t.Errorf("FromTransport(app error) = %v, want same instance", got)
	}
}

func TestDescription(t *testing.T) {
	e := &Error{Kind: BadResponse, Detail: "503"}
	want := "An error occurred on the network call due to bad response:\nStatus 503"
	if got := e.Description(); got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", &Error{Kind: DecodingFailure, Detail: "x"})

	if !Is(err, DecodingFailure) {
		t.Error("Is(err, DecodingFailure) = false, want true")
	}
	if Is(err, BadResponse) {
		t.Error("Is(err, BadResponse) = true, want false")
	}
	if Is(errors.New("plain"), Internal) {
		t.Error("Is(plain, Internal) = true, want false")
	}
}
