package battles

import (
	"context"
	"sync"
	"time"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
	"github.com/KirkDiggler/rpg-arena/internal/pkg/clock"
)

// MemoryConfig holds the configuration for the in-memory repository
type MemoryConfig struct {
	Clock clock.Clock
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

type memoryEntry struct {
	record    Record
	expiresAt time.Time
}

type memoryRepository struct {
	mu      sync.RWMutex
	clock   clock.Clock
	ttl     time.Duration
	records map[string]memoryEntry
	// newest first
	recent []string
}

// NewMemoryRepository creates a process-local record store. A nil config
// uses the real clock and the default TTL.
func NewMemoryRepository(cfg *MemoryConfig) Repository {
	if cfg == nil {
		cfg = &MemoryConfig{}
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &memoryRepository{
		clock:   c,
		ttl:     ttl,
		records: make(map[string]memoryEntry),
	}
}

// Ensure memoryRepository implements Repository
var _ Repository = (*memoryRepository)(nil)

func (r *memoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Record == nil {
		return nil, errors.InvalidArgument(errRecordNil)
	}
	if input.Record.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	ttl := r.ttl
	if input.TTL > 0 {
		ttl = input.TTL
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	r.records[input.Record.ID] = memoryEntry{
		record:    copyRecord(input.Record),
		expiresAt: now.Add(ttl),
	}

	// every stored record is indexed, so records fall out with their index entry
	recent := make([]string, 0, len(r.recent)+1)
	recent = append(recent, input.Record.ID)
	for _, id := range r.recent {
		if id == input.Record.ID {
			continue
		}
		entry, ok := r.records[id]
		if !ok || !now.Before(entry.expiresAt) || len(recent) == maxRecent {
			delete(r.records, id)
			continue
		}
		recent = append(recent, id)
	}
	r.recent = recent

	return &SaveOutput{}, nil
}

// size reports how many records are held, expired or not
func (r *memoryRepository) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.records[input.ID]
	if !ok || !r.clock.Now().Before(entry.expiresAt) {
		return nil, errors.NotFoundf("battle record %s not found", input.ID)
	}

	record := copyRecord(&entry.record)
	return &GetOutput{Record: &record}, nil
}

func (r *memoryRepository) ListRecent(_ context.Context, input ListRecentInput) (*ListRecentOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgument(errBadLimit)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	limit := listLimit(input.Limit)
	if limit > len(r.recent) {
		limit = len(r.recent)
	}

	now := r.clock.Now()
	records := make([]*Record, 0, limit)
	for _, id := range r.recent[:limit] {
		entry, ok := r.records[id]
		if !ok || !now.Before(entry.expiresAt) {
			continue
		}
		record := copyRecord(&entry.record)
		records = append(records, &record)
	}

	return &ListRecentOutput{Records: records}, nil
}

func copyRecord(in *Record) Record {
	out := *in
	out.Log = append([]string(nil), in.Log...)
	return out
}
