// Package battles stores the records of finished battles. Live battles are
// never persisted; a record is written once, when a battle ends.
package battles

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesmock github.com/KirkDiggler/rpg-arena/internal/repositories/battles Repository

// Record is the stored summary of a finished battle
type Record struct {
	ID string `json:"id"`

	PlayerName  string `json:"player_name"`
	PlayerClass string `json:"player_class"`
	EnemyName   string `json:"enemy_name"`
	EnemyClass  string `json:"enemy_class"`

	// Outcome is player, enemy or draw
	Outcome string `json:"outcome"`
	Winner  string `json:"winner,omitempty"`
	Message string `json:"message"`
	Turns   int    `json:"turns"`

	// Log holds every narrative message in order
	Log []string `json:"log"`

	StartedAt time.Time `json:"started_at"`
	EndedAt   time.Time `json:"ended_at"`
}

// SaveInput contains the record to store
type SaveInput struct {
	Record *Record
	// TTL overrides the repository default when positive
	TTL time.Duration
}

// SaveOutput is returned by Save
type SaveOutput struct{}

// GetInput identifies a record
type GetInput struct {
	ID string
}

// GetOutput contains the stored record
type GetOutput struct {
	Record *Record
}

// ListRecentInput bounds a listing of recent records
type ListRecentInput struct {
	// Limit defaults to 10 and is capped at the length of the recent index
	Limit int
}

// ListRecentOutput contains records, newest first
type ListRecentOutput struct {
	Records []*Record
}

// Repository defines storage for finished battles
type Repository interface {
	// Save stores a record and indexes it as the most recent
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get returns a record by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListRecent returns the latest records that have not expired, newest first
	ListRecent(ctx context.Context, input ListRecentInput) (*ListRecentOutput, error)
}

const (
	// DefaultTTL is how long a record is kept when no TTL is configured
	DefaultTTL = 24 * time.Hour

	// maxRecent bounds the recent index
	maxRecent = 100

	defaultListLimit = 10

	errRecordNil = "record cannot be nil"
	errIDEmpty   = "record ID cannot be empty"
	errBadLimit  = "limit cannot be negative"
)

func listLimit(limit int) int {
	switch {
	case limit == 0:
		return defaultListLimit
	case limit > maxRecent:
		return maxRecent
	default:
		return limit
	}
}
