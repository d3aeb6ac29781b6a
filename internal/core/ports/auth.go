package ports

import (
	"context"
	"time"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
)

// AuthRepository defines persistence for admin accounts.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.AdminAccount, error)
	Create(ctx context.Context, account *domain.AdminAccount) (*domain.AdminAccount, error)
}

// TokenRevoker records revoked token ids until their natural expiry.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Session is returned by a successful login.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService issues, verifies and revokes admin session tokens.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*Session, error)
	// Verify fails closed: any missing, malformed, tampered, expired or
	// revoked token yields domain.ErrTokenInvalid.
	Verify(ctx context.Context, token string) (*domain.AdminClaims, error)
	// Logout revokes the token server-side. Unparseable tokens are a no-op.
	Logout(ctx context.Context, token string) error
}
