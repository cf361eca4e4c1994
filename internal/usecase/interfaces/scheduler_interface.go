package interfaces

import (
	"context"
	"time"
)

// IScheduler runs fn once after delay unless the returned cancel func is called first.
//
// fn receives a context that is done once the task is cancelled, so a task that
// already started can still notice it became irrelevant.
type IScheduler interface {
	Schedule(delay time.Duration, fn func(ctx context.Context)) context.CancelFunc
}
