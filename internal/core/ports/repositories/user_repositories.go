package repositories

import (
	"context"
	"time"

	"github.com/sutratex/bunai-backend/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserAuthByUsername retrieves the credential view of a user for the
	// login flow.
	FindUserAuthByUsername(ctx context.Context, username string) (*domain.UserAuth, error)

	// FindUserAuthByID retrieves the credential view of a user for refresh
	// token validation.
	FindUserAuthByID(ctx context.Context, userID string) (*domain.UserAuth, error)

	// FindUsers retrieves a paginated list of users.
	FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user with its password hash.
	SaveUser(ctx context.Context, user domain.User, passwordHash string) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// StoreRefreshTokenHash records the hash and expiry of a user's current
	// refresh token; empty hash clears it.
	StoreRefreshTokenHash(ctx context.Context, userID string, tokenHash string, expiryTime *time.Time) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
// This is a facade for clients that need access to all operations
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
