package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/smcs-alumni/alumni-portal/internal/core/domain"
	"github.com/smcs-alumni/alumni-portal/internal/core/ports"
)

// AuthService implements login, token verification and logout revocation.
type AuthService struct {
	repo      ports.AuthRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
	now       func() time.Time
}

func NewAuthService(repo ports.AuthRepository, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Login checks the password against the stored bcrypt hash and issues a
// signed session token. Unknown usernames and wrong passwords both map to
// ErrInvalidCredentials so the response does not reveal which one failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.Session, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	claims := jwt.MapClaims{
		"username": account.Username,
		"is_admin": true,
		"jti":      newTokenID(),
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	s.log.Info().Str("username", account.Username).Msg("admin logged in")
	return &ports.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify validates signature, expiry, the admin flag and the revocation
// list. Every failure mode collapses to ErrTokenInvalid.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.AdminClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}

	if claims.TokenID != "" {
		revoked, err := s.revoker.IsRevoked(ctx, claims.TokenID)
		if err != nil {
			// Revocation store unreachable: fall back to signature-only
			// validation rather than locking every admin out.
			s.log.Warn().Err(err).Msg("revocation check failed, accepting token")
		} else if revoked {
			return nil, domain.ErrTokenInvalid
		}
	}

	return claims, nil
}

// Logout revokes the token id until the token would have expired anyway.
// Tokens that fail to parse have nothing to revoke.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil || claims.TokenID == "" {
		return nil
	}

	ttl := claims.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}

	s.log.Info().Str("username", claims.Username).Msg("admin logged out")
	return nil
}

func (s *AuthService) parse(token string) (*domain.AdminClaims, error) {
	mc := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	isAdmin, _ := mc["is_admin"].(bool)
	if !isAdmin {
		return nil, domain.ErrTokenInvalid
	}

	username, _ := mc["username"].(string)
	tokenID, _ := mc["jti"].(string)
	claims := &domain.AdminClaims{Username: username, TokenID: tokenID}
	if iat, err := mc.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}

// newTokenID returns a random 16-hex-char token id used as the jti claim.
func newTokenID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%016x", time.Now().UnixNano())
	}
	return hex.EncodeToString(b)
}
