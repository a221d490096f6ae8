package dialog

import (
	"context"
	"sync"
)

type presentCall struct {
	view    View
	respond func(Response)
}

type fakeSurface struct {
	mu    sync.Mutex
	calls []presentCall
}

func (f *fakeSurface) Present(_ context.Context, view View, respond func(Response)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, presentCall{view: view, respond: respond})
}

func (f *fakeSurface) last() presentCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[len(f.calls)-1]
}

func (f *fakeSurface) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
