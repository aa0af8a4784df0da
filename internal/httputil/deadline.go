// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers for talking to the conversion service.
package httputil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds a request when the caller passes a zero timeout.
// Tests override this to avoid long waits.
var DefaultTimeout = 60 * time.Second

// Response is a fully read HTTP response. The body is read inside the
// deadline so callers never hold a connection open past it.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// OK reports whether the status code is in the 2xx range.
func (r *Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// TimeoutError reports that a request did not complete before its deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("conversion service did not respond within %v", e.After)
}

// Unwrap lets errors.Is match context.DeadlineExceeded.
func (e *TimeoutError) Unwrap() error {
	return context.DeadlineExceeded
}

// DoWithDeadline executes req under a deadline of timeout and reads the whole
// response body before returning. When timeout is 0 DefaultTimeout is used.
//
// A deadline expiry, whether during dispatch or while reading the body, is
// returned as *TimeoutError. Cancellation of the parent context is returned
// as ctx.Err(). Any other transport error is returned unchanged.
func DoWithDeadline(ctx context.Context, client *http.Client, req *http.Request, timeout time.Duration) (*Response, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	dctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := client.Do(req.Clone(dctx))
	if err != nil {
		return nil, deadlineErr(ctx, dctx, timeout, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, deadlineErr(ctx, dctx, timeout, fmt.Errorf("reading response body: %w", err))
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

// deadlineErr maps err to the cause the caller cares about: parent
// cancellation first, then our own deadline.
func deadlineErr(parent, dctx context.Context, timeout time.Duration, err error) error {
	if parent.Err() != nil {
		return parent.Err()
	}
	if errors.Is(dctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{After: timeout}
	}
	return err
}
