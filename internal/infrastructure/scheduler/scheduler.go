package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	"assistente_juridico/internal/usecase/interfaces"
)

// Timer schedules tasks on time.AfterFunc. Close cancels every pending task.
type Timer struct {
	root   context.Context
	cancel context.CancelFunc
}

var _ interfaces.IScheduler = (*Timer)(nil)

func NewTimer() *Timer {
	ctx, cancel := context.WithCancel(context.Background())
	return &Timer{root: ctx, cancel: cancel}
}

func (t *Timer) Schedule(delay time.Duration, fn func(ctx context.Context)) context.CancelFunc {
	ctx, cancel := context.WithCancel(t.root)

	timer := time.AfterFunc(delay, func() {
		defer cancel()
		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	})
	return func() {
		timer.Stop()
		cancel()
	}
}

func (t *Timer) Close() {
	t.cancel()
}

// Manual is a scheduler driven by Advance, used where tests need exact control of
// simulated latency.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*manualTask
}

type manualTask struct {
	at     time.Duration
	seq    int
	fn     func(ctx context.Context)
	ctx    context.Context
	cancel context.CancelFunc
}

var _ interfaces.IScheduler = (*Manual)(nil)

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Schedule(delay time.Duration, fn func(ctx context.Context)) context.CancelFunc {
	ctx, cancel := context.WithCancel(context.Background())
	m.mu.Lock()
	m.seq++
	m.tasks = append(m.tasks, &manualTask{at: m.now + delay, seq: m.seq, fn: fn, ctx: ctx, cancel: cancel})
	m.mu.Unlock()
	return cancel
}

// Advance moves the clock forward and runs, in due order, every task that became due.
// Tasks run outside the scheduler lock so they may schedule new work.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	m.now += d
	now := m.now
	var due, rest []*manualTask
	for _, t := range m.tasks {
		if t.at <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	m.tasks = rest
	m.mu.Unlock()

	sort.Slice(due, func(i, j int) bool {
		if due[i].at != due[j].at {
			return due[i].at < due[j].at
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		if t.ctx.Err() == nil {
			t.fn(t.ctx)
		}
		t.cancel()
	}
}

// Pending counts tasks that are scheduled and not cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if t.ctx.Err() == nil {
			n++
		}
	}
	return n
}
