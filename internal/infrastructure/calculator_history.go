package infrastructure

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/calculator"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
)

type historyKey struct {
	userID ulid.ULID
	kind   calculator.Kind
}

// CalculatorHistoryStore keeps per-user, per-calculator history in process
// memory. History is append-only and listed newest first.
type CalculatorHistoryStore struct {
	mu      sync.RWMutex
	history map[historyKey][]*calculator.Snapshot
	current map[historyKey]*calculator.Snapshot
}

func NewCalculatorHistoryStore() *CalculatorHistoryStore {
	return &CalculatorHistoryStore{
		history: make(map[historyKey][]*calculator.Snapshot),
		current: make(map[historyKey]*calculator.Snapshot),
	}
}

func (s *CalculatorHistoryStore) Append(ctx context.Context, snapshot *calculator.Snapshot) error {
	key := historyKey{userID: snapshot.UserId, kind: snapshot.Kind}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Prepend so List never has to sort.
	s.history[key] = append([]*calculator.Snapshot{snapshot}, s.history[key]...)
	return nil
}

func (s *CalculatorHistoryStore) List(ctx context.Context, userID ulid.ULID, kind calculator.Kind) ([]*calculator.Snapshot, error) {
	key := historyKey{userID: userID, kind: kind}

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.history[key]
	out := make([]*calculator.Snapshot, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *CalculatorHistoryStore) Get(ctx context.Context, userID ulid.ULID, kind calculator.Kind, id ulid.ULID) (*calculator.Snapshot, error) {
	key := historyKey{userID: userID, kind: kind}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, snapshot := range s.history[key] {
		if snapshot.Id == id {
			return snapshot, nil
		}
	}
	return nil, appErrors.ErrResultNotFound
}

func (s *CalculatorHistoryStore) SetCurrent(ctx context.Context, userID ulid.ULID, kind calculator.Kind, snapshot *calculator.Snapshot) error {
	key := historyKey{userID: userID, kind: kind}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[key] = snapshot
	return nil
}

func (s *CalculatorHistoryStore) Current(ctx context.Context, userID ulid.ULID, kind calculator.Kind) (*calculator.Snapshot, error) {
	key := historyKey{userID: userID, kind: kind}

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.current[key]
	if !ok {
		return nil, appErrors.ErrResultNotFound
	}
	return snapshot, nil
}

func (s *CalculatorHistoryStore) Reset(ctx context.Context, userID ulid.ULID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.history {
		if key.userID == userID {
			delete(s.history, key)
		}
	}
	for key := range s.current {
		if key.userID == userID {
			delete(s.current, key)
		}
	}
	return nil
}
