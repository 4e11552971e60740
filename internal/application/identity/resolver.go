// Package identity resolves an authenticated session into the authorization
// attributes every operation is scoped by.
package identity

import (
	"context"

	"github.com/google/uuid"

	"beyazmasa/internal/domain/staff"
	"beyazmasa/internal/shared/errors"
	"beyazmasa/internal/shared/logger"
)

// Resolver looks up the caller's staff profile and derives the Actor for the
// access policy. A valid token without a profile row means "no role" and is
// denied everything except the public endpoints.
type Resolver struct {
	profiles staff.Repository
	logger   logger.Interface
}

func NewResolver(profiles staff.Repository, logger logger.Interface) *Resolver {
	return &Resolver{profiles: profiles, logger: logger}
}

// Resolve maps the session's user id to an Actor.
func (r *Resolver) Resolve(ctx context.Context, userID string) (staff.Actor, error) {
	if userID == "" {
		return staff.Actor{}, errors.NewUnauthorizedError("oturum bulunamadı")
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		r.logger.Warnw("malformed user id in session", "user_id", userID)
		return staff.Actor{}, errors.NewUnauthorizedError("oturum bulunamadı")
	}

	profile, err := r.profiles.GetByID(ctx, id)
	if err != nil {
		if errors.IsNotFoundError(err) {
			r.logger.Warnw("session without staff profile", "user_id", userID)
			return staff.Actor{}, errors.NewForbiddenError("bu hesap için yetki tanımlı değil")
		}
		r.logger.Errorw("failed to load profile", "user_id", userID, "error", err)
		return staff.Actor{}, errors.NewInternalError("failed to resolve caller identity")
	}

	return profile.Actor(), nil
}
