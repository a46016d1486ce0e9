package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the CLI reads out of an access token for display.
// The signature is not checked; only the server can do that.
type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// HasExpiry reports whether the token carries an exp claim.
func (c TokenClaims) HasExpiry() bool { return !c.ExpiresAt.IsZero() }

// ParseClaims decodes the claims of a JWT without verifying it.
func ParseClaims(token string) (TokenClaims, error) {
	var out TokenClaims
	if token == "" {
		return out, errors.New("empty token")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return out, fmt.Errorf("parse token: %w", err)
	}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	} else if v, ok := claims["sub"]; ok {
		// identities are not always strings
		out.Subject = fmt.Sprint(v)
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		out.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Claims decodes the current session token.
func (s *Service) Claims() (TokenClaims, error) {
	return ParseClaims(s.state.Token())
}

// EnsureFresh refreshes the token when it expires within window. Tokens that
// cannot be decoded or carry no expiry are left alone. The second return value
// reports whether a refresh was attempted.
func (s *Service) EnsureFresh(ctx context.Context, window time.Duration) (Result, bool) {
	if s.state.Token() == "" {
		return Result{Error: MsgNotLoggedIn}, false
	}
	claims, err := s.Claims()
	if err != nil || !claims.HasExpiry() {
		return succeeded(), false
	}
	if claims.ExpiresAt.Sub(s.now()) > window {
		return succeeded(), false
	}
	s.log.Debug("token close to expiry, refreshing", "expires_at", claims.ExpiresAt)
	return s.RefreshToken(ctx), true
}
