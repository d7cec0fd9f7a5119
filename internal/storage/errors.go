package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// RemoteErrorKind distinguishes classes of remote store failure. The
// coordinator only inspects it to decide whether to latch the fallback
// flag; no kind is retried within a request.
type RemoteErrorKind int

const (
	RemoteUnknown RemoteErrorKind = iota
	RemoteAuth
	RemoteNotFound
	RemoteTransient
)

func (k RemoteErrorKind) String() string {
	switch k {
	case RemoteAuth:
		return "auth"
	case RemoteNotFound:
		return "not_found"
	case RemoteTransient:
		return "transient"
	}
	return "unknown"
}

// RemoteError wraps a Google Sheets API failure with a coarse class.
type RemoteError struct {
	Kind RemoteErrorKind
	Err  error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("sheets: %s: %v", e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// classifyRemote maps an API error to a RemoteError. Quota and server
// errors are transient; credential problems are permanent.
func classifyRemote(err error) *RemoteError {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusUnauthorized || gerr.Code == http.StatusForbidden:
			return &RemoteError{Kind: RemoteAuth, Err: err}
		case gerr.Code == http.StatusNotFound:
			return &RemoteError{Kind: RemoteNotFound, Err: err}
		case gerr.Code == http.StatusTooManyRequests || gerr.Code >= 500:
			return &RemoteError{Kind: RemoteTransient, Err: err}
		}
		return &RemoteError{Kind: RemoteUnknown, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &RemoteError{Kind: RemoteTransient, Err: err}
	}
	return &RemoteError{Kind: RemoteUnknown, Err: err}
}
