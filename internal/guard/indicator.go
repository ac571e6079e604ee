package guard

import "sync/atomic"

// NavigationTracker is a LoadingIndicator that counts delayed navigations.
// InFlight is non-zero while at least one page is "loading".
type NavigationTracker struct {
	inFlight atomic.Int64
	total    atomic.Int64
}

func NewNavigationTracker() *NavigationTracker {
	return &NavigationTracker{}
}

func (t *NavigationTracker) Begin() {
	t.inFlight.Add(1)
	t.total.Add(1)
}

func (t *NavigationTracker) End() {
	t.inFlight.Add(-1)
}

func (t *NavigationTracker) InFlight() int64 {
	return t.inFlight.Load()
}

// Total counts navigations that started, finished or not.
func (t *NavigationTracker) Total() int64 {
	return t.total.Load()
}

func (t *NavigationTracker) IsLoading() bool {
	return t.InFlight() > 0
}
