package service

import (
	"fmt"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the decoded payload of a verified access token.
type Claims struct {
	Email string
	Role  string
	Raw   jwt.MapClaims
}

// AuthService issues and verifies signed access tokens.
//
// Issue signs whatever identity payload it is given: authenticating the
// payload is the caller's job (the /login flow verifies a password first;
// POST /jwt trusts an external login collaborator).
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		secret: []byte(cfg.Auth.AccessTokenSecret),
		ttl:    time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
	}
}

// Issue mints an HS256 token carrying payload plus iat/exp registered claims.
// Expiry is fixed at the configured TTL; payload may not override it.
func (s *AuthService) Issue(payload map[string]interface{}) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// IssueForUser mints a token for an internally authenticated user.
func (s *AuthService) IssueForUser(user *model.User) (string, error) {
	return s.Issue(map[string]interface{}{
		"email": user.Email,
		"name":  user.Name,
		"role":  user.Role.String(),
	})
}

// Verify validates signature and expiry and returns the decoded claims.
// There is no grace period: an expired token fails.
func (s *AuthService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Raw: mapClaims}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	if role, ok := mapClaims["role"].(string); ok {
		claims.Role = role
	}
	return claims, nil
}

// TTL returns the configured token lifetime.
func (s *AuthService) TTL() time.Duration {
	return s.ttl
}
