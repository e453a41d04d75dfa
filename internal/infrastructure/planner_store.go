package infrastructure

import (
	"context"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/planner"
	appErrors "github.com/iamsjeevan/finance-advisory-platform-sub000/internal/errors"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/pkg"
)

// PlannerSessionStore keeps wizard sessions in process memory, one per user.
// The stored session never leaves the store: reads return copies and Update
// runs the mutation under the lock, so concurrent requests for the same user
// cannot race on session fields.
type PlannerSessionStore struct {
	mu       sync.RWMutex
	sessions map[ulid.ULID]*planner.Session
}

func NewPlannerSessionStore() *PlannerSessionStore {
	return &PlannerSessionStore{
		sessions: make(map[ulid.ULID]*planner.Session),
	}
}

func (s *PlannerSessionStore) GetOrCreate(ctx context.Context, userID ulid.ULID) (*planner.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getOrCreateLocked(userID).Clone(), nil
}

func (s *PlannerSessionStore) Get(ctx context.Context, userID ulid.ULID) (*planner.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[userID]
	if !ok {
		return nil, appErrors.ErrSessionNotFound
	}
	return session.Clone(), nil
}

func (s *PlannerSessionStore) Update(ctx context.Context, userID ulid.ULID, apply func(*planner.Session) error) (*planner.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.getOrCreateLocked(userID)
	if err := apply(session); err != nil {
		return nil, err
	}
	return session.Clone(), nil
}

func (s *PlannerSessionStore) Delete(ctx context.Context, userID ulid.ULID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, userID)
	return nil
}

func (s *PlannerSessionStore) getOrCreateLocked(userID ulid.ULID) *planner.Session {
	if session, ok := s.sessions[userID]; ok {
		return session
	}

	session := &planner.Session{
		Id:        pkg.GenerateULIDObject(),
		UserId:    userID,
		FormData:  planner.DefaultFormData(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	s.sessions[userID] = session
	return session
}
