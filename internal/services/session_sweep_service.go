package services

import (
	"context"
	"time"

	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

// SessionSweepService reconciles users whose browser closed without an
// explicit logout: the session store's own expiry never touches
// users.status, so staleness is repaired out-of-band on a timer. This
// is best effort; a login racing the sweep is accepted.
type SessionSweepService interface {
	DeactivateExpiredUsers(ctx context.Context) error
}

type sessionSweepService struct {
	sessionRepo repositories.SessionRepository
	userRepo    repositories.UserRepository
}

func NewSessionSweepService(
	sessionRepo repositories.SessionRepository,
	userRepo repositories.UserRepository,
) SessionSweepService {
	return &sessionSweepService{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
	}
}

func (s *sessionSweepService) DeactivateExpiredUsers(ctx context.Context) error {
	// One clock per tick: every comparison in this sweep uses this now.
	now := time.Now().UTC()

	ids, err := s.sessionRepo.ExpiredUserIDs(ctx, now)
	if err != nil {
		return err
	}

	if len(ids) > 0 {
		affected, err := s.userRepo.DeactivateMany(ctx, ids)
		if err != nil {
			return err
		}
		utils.Logger.Infof("Marked %d user(s) as inactive due to expired sessions", affected)
	}

	pruned, err := s.sessionRepo.DeleteExpired(ctx, now)
	if err != nil {
		return err
	}
	if pruned > 0 {
		utils.Logger.Debugf("Pruned %d expired session row(s)", pruned)
	}
	return nil
}
