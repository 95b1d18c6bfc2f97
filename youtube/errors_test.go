package youtube

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/api/googleapi"
)

func TestIsRateLimited(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"sentinel", ErrRateLimited, true},
		{"wrapped sentinel", fmt.Errorf("call: %w", ErrRateLimited), true},
		{"plain error", errors.New("boom"), false},
		{
			"quota exceeded",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "quotaExceeded"}}},
			true,
		},
		{
			"rate limit exceeded",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "rateLimitExceeded"}}},
			true,
		},
		{
			"user rate limit",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "userRateLimitExceeded"}}},
			true,
		},
		{"too many requests", &googleapi.Error{Code: 429}, true},
		{
			"plain forbidden",
			&googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "forbidden"}}},
			false,
		},
		{"server error", &googleapi.Error{Code: 500}, false},
		{"not found", &googleapi.Error{Code: 404}, false},
		{
			"wrapped quota error",
			fmt.Errorf("list: %w", &googleapi.Error{Code: 403, Errors: []googleapi.ErrorItem{{Reason: "quotaExceeded"}}}),
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRateLimited(tt.err); got != tt.want {
				t.Errorf("isRateLimited(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestAPIErrorUnwrap(t *testing.T) {
	err := &APIError{Op: "resolve", Target: "somechannel", Err: ErrChannelNotFound}

	if !errors.Is(err, ErrChannelNotFound) {
		t.Error("APIError should unwrap to ErrChannelNotFound")
	}

	var apiErr *APIError
	if !errors.As(error(err), &apiErr) {
		t.Fatal("errors.As failed for APIError")
	}
	if apiErr.Op != "resolve" || apiErr.Target != "somechannel" {
		t.Errorf("unexpected fields: %+v", apiErr)
	}
}

func TestBatchErrorFormat(t *testing.T) {
	inner := errors.New("server error")
	err := &BatchError{Start: 50, End: 100, Err: inner}

	want := "youtube: batch [50:100): server error"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
	if !errors.Is(err, inner) {
		t.Error("BatchError should unwrap to the inner error")
	}
}
