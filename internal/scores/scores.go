package scores

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Run is one finished flight.
type Run struct {
	ID       int64
	Variant  string
	Seed     int64
	Distance float64
	Landings int
	Ticks    uint64
	PlayedAt time.Time
}

// Store persists finished runs and answers the best distance.
type Store interface {
	// Best returns the longest recorded distance, or 0 with no runs.
	Best(ctx context.Context) (float64, error)
	Record(ctx context.Context, r Run) error
	// Recent returns up to n runs, newest first.
	Recent(ctx context.Context, n int) ([]Run, error)
	Close() error
}

// Memory is an in-process Store.
type Memory struct {
	mu   sync.Mutex
	runs []Run
	now  func() time.Time
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{now: time.Now}
}

func (m *Memory) Best(ctx context.Context) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	best := 0.0
	for _, r := range m.runs {
		if r.Distance > best {
			best = r.Distance
		}
	}
	return best, nil
}

func (m *Memory) Record(ctx context.Context, r Run) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	r.ID = int64(len(m.runs) + 1)
	if r.PlayedAt.IsZero() {
		r.PlayedAt = m.now()
	}
	m.runs = append(m.runs, r)
	return nil
}

func (m *Memory) Recent(ctx context.Context, n int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Run, len(m.runs))
	copy(out, m.runs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out, nil
}

func (m *Memory) Close() error { return nil }
