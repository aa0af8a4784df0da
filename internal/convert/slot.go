// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"context"
	"sync"

	"github.com/pdiddy/imgpdf/pkg/types"
)

// RunFunc performs one attempt. Controller.Run satisfies it.
type RunFunc func(ctx context.Context, sel types.Selection, notify NotifyFunc) types.ConversionResult

// Outcome is a finished attempt and whether it was still current when it
// finished.
type Outcome struct {
	Result  types.ConversionResult
	Current bool
}

// Slot lets at most one attempt be observable at a time. Starting a new
// attempt cancels the one in flight; the superseded attempt's notifications
// and result are dropped.
type Slot struct {
	run RunFunc

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// NewSlot wraps run in a single-slot trigger.
func NewSlot(run RunFunc) *Slot {
	return &Slot{run: run}
}

// Start registers an attempt for sel, cancelling any attempt in flight, and
// runs it in the background. Registration happens before Start returns, so
// attempts started one after another supersede each other in call order.
//
// apply, when non-nil, is called with the result only if the attempt is
// still current, and before any later attempt can notify. The returned
// channel receives exactly one Outcome.
func (s *Slot) Start(ctx context.Context, sel types.Selection, notify NotifyFunc, apply func(types.ConversionResult)) <-chan Outcome {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	gen := s.gen
	actx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	guarded := func(msg types.StatusMessage) {
		if notify == nil {
			return
		}
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.gen == gen {
			notify(msg)
		}
	}

	done := make(chan Outcome, 1)
	go func() {
		defer cancel()
		res := s.run(actx, sel, guarded)
		done <- s.finish(gen, res, apply)
	}()
	return done
}

// Trigger is Start followed by waiting for the outcome.
func (s *Slot) Trigger(ctx context.Context, sel types.Selection, notify NotifyFunc, apply func(types.ConversionResult)) (types.ConversionResult, bool) {
	o := <-s.Start(ctx, sel, notify, apply)
	return o.Result, o.Current
}

// Cancel aborts the attempt in flight, if any. Its outcome will not be
// current.
func (s *Slot) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.gen++
}

func (s *Slot) finish(gen uint64, res types.ConversionResult, apply func(types.ConversionResult)) Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return Outcome{Result: res, Current: false}
	}
	s.cancel = nil
	if apply != nil {
		apply(res)
	}
	return Outcome{Result: res, Current: true}
}
