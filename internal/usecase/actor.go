package usecase

import (
	"context"

	"clinic-booking-api/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorFromContext resolves the authenticated user for audit attribution.
// Returns nil when the request did not pass through the auth middleware.
func actorFromContext(ctx context.Context) *uuid.UUID {
	if id, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &id
	}
	return nil
}
