package usecase

import (
	"context"

	"github.com/bnema/xiboic/internal/domain/entity"
)

// ResultChannel adapts the two continuations of an action to a channel.
// The channel is buffered so the host never blocks on delivery, and it
// receives exactly one Result per call.
func ResultChannel() (entity.ResponseCallback, <-chan entity.Result) {
	results := make(chan entity.Result, 1)
	cb := entity.ResponseCallback{
		OnSuccess: func(resp *entity.Response) {
			results <- entity.Result{Response: resp}
		},
		OnError: func(err error) {
			results <- entity.Result{Err: err}
		},
	}
	return cb.Once(), results
}

// Await blocks until a result arrives or ctx is done.
// Cancelling ctx only stops the wait; the call itself keeps running until
// it completes or hits the configured timeout.
func Await(ctx context.Context, results <-chan entity.Result) (*entity.Response, error) {
	select {
	case res := <-results:
		return res.Response, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
