package purge

import (
	"context"
	"log"
	"time"
)

// Store is the slice of a credential store the purger needs.
type Store interface {
	Purge(ctx context.Context, now time.Time) (int64, error)
}

// StoreFunc adapts a purge method to the Store interface.
type StoreFunc func(ctx context.Context, now time.Time) (int64, error)

func (f StoreFunc) Purge(ctx context.Context, now time.Time) (int64, error) {
	return f(ctx, now)
}

// Purger periodically removes expired or consumed credential records. It only
// touches rows that can no longer authenticate anything, so it is safe to run
// against live traffic.
type Purger struct {
	interval time.Duration
	stores   map[string]Store
}

func NewPurger(interval time.Duration) *Purger {
	return &Purger{
		interval: interval,
		stores:   make(map[string]Store),
	}
}

// Register adds a named store to the purge cycle.
func (p *Purger) Register(name string, s Store) {
	p.stores[name] = s
}

// Run blocks until ctx is cancelled, purging every registered store once per
// interval. Intended to be started as a goroutine at process init.
func (p *Purger) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.purgeAll(ctx)
		}
	}
}

func (p *Purger) purgeAll(ctx context.Context) {
	now := time.Now()
	for name, s := range p.stores {
		count, err := s.Purge(ctx, now)
		if err != nil {
			log.Printf("warn: purge of %s failed: %v", name, err)
			continue
		}
		if count > 0 {
			log.Printf("purged %d %s records", count, name)
		}
	}
}
