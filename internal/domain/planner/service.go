package planner

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/domain/shared"
	"github.com/iamsjeevan/finance-advisory-platform-sub000/internal/logger"
)

type Service struct {
	Store       SessionStore
	UserChecker *shared.UserCheckerService
}

func NewService(store SessionStore, userChecker *shared.UserCheckerService) *Service {
	return &Service{Store: store, UserChecker: userChecker}
}

func (s *Service) GetSession(ctx context.Context, userID ulid.ULID) (*Session, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}
	return s.Store.GetOrCreate(ctx, userID)
}

func (s *Service) UpdateField(ctx context.Context, userID ulid.ULID, name, value string) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		return session.UpdateField(name, value)
	})
}

func (s *Service) UpdateSelectField(ctx context.Context, userID ulid.ULID, name, value string) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		return session.UpdateSelectField(name, value)
	})
}

func (s *Service) UpdateSliderField(ctx context.Context, userID ulid.ULID, name string, values []float64) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		return session.UpdateSliderField(name, values)
	})
}

func (s *Service) UpdateDateField(ctx context.Context, userID ulid.ULID, date *time.Time) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		session.UpdateDateField(date)
		return nil
	})
}

func (s *Service) SelectFile(ctx context.Context, userID ulid.ULID, file *UploadedFile) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		session.SelectFile(file)
		return nil
	})
}

// SubmitResult is what the submit action hands back: the flipped session, the
// derived summary, the risk profile, and the confirmation the user sees.
type SubmitResult struct {
	Session     *Session    `json:"session"`
	Summary     Summary     `json:"summary"`
	RiskProfile RiskProfile `json:"riskProfile"`
	Message     string      `json:"message"`
}

func (s *Service) Submit(ctx context.Context, userID ulid.ULID) (*SubmitResult, error) {
	session, err := s.mutate(ctx, userID, func(session *Session) error {
		session.Submit()
		return nil
	})
	if err != nil {
		return nil, err
	}

	message := "Your financial plan is ready"
	if session.File == nil {
		message = "Your financial plan is ready. For a more accurate plan, consider uploading your passbook later."
	}

	logger.Info().
		Str("user_id", userID.String()).
		Bool("has_file", session.File != nil).
		Msg("planner questionnaire submitted")

	return &SubmitResult{
		Session:     session,
		Summary:     BuildSummary(session.FormData),
		RiskProfile: CalculateRiskProfile(session.FormData),
		Message:     message,
	}, nil
}

func (s *Service) Reset(ctx context.Context, userID ulid.ULID) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		session.Reset()
		return nil
	})
}

func (s *Service) Advance(ctx context.Context, userID ulid.ULID) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		session.Advance()
		return nil
	})
}

func (s *Service) Retreat(ctx context.Context, userID ulid.ULID) (*Session, error) {
	return s.mutate(ctx, userID, func(session *Session) error {
		session.Retreat()
		return nil
	})
}

func (s *Service) GetSummary(ctx context.Context, userID ulid.ULID) (*Summary, error) {
	session, err := s.GetSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	summary := BuildSummary(session.FormData)
	return &summary, nil
}

func (s *Service) mutate(ctx context.Context, userID ulid.ULID, apply func(*Session) error) (*Session, error) {
	if err := s.ensureUser(ctx, userID); err != nil {
		return nil, err
	}

	return s.Store.Update(ctx, userID, func(session *Session) error {
		if err := apply(session); err != nil {
			return err
		}
		session.UpdatedAt = time.Now()
		return nil
	})
}

func (s *Service) ensureUser(ctx context.Context, userID ulid.ULID) error {
	if s.UserChecker == nil {
		return nil
	}
	return s.UserChecker.EnsureUserExists(ctx, userID)
}
