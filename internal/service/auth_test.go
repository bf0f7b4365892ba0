package service

import (
	"strings"
	"testing"
	"time"

	"staffhub/internal/config"
	"staffhub/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig(ttlMinutes int) *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AccessTokenSecret: "test-secret",
			TokenTTLMinutes:   ttlMinutes,
		},
	}
}

func TestIssueAndVerifyRoundtrip(t *testing.T) {
	svc := NewAuthService(testAuthConfig(60))

	token, err := svc.Issue(map[string]interface{}{
		"email": "a@x.com",
		"role":  "employee",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "employee", claims.Role)
}

func TestIssueForUserCarriesIdentity(t *testing.T) {
	svc := NewAuthService(testAuthConfig(60))

	token, err := svc.IssueForUser(&model.User{
		Name:  "Jane",
		Email: "jane@x.com",
		Role:  model.RoleHR,
	})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, "HR", claims.Role)
	assert.Equal(t, "Jane", claims.Raw["name"])
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	expired := NewAuthService(testAuthConfig(-1))

	token, err := expired.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = expired.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig(60))

	token, err := svc.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	// Flip a character in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsTokenFromOtherSecret(t *testing.T) {
	issuer := NewAuthService(testAuthConfig(60))
	verifier := NewAuthService(&config.Config{
		Auth: config.AuthConfig{AccessTokenSecret: "other-secret", TokenTTLMinutes: 60},
	})

	token, err := issuer.Issue(map[string]interface{}{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc := NewAuthService(testAuthConfig(60))

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueFixesExpiry(t *testing.T) {
	svc := NewAuthService(testAuthConfig(60))

	// A caller-supplied exp must not extend the token lifetime.
	token, err := svc.Issue(map[string]interface{}{
		"email": "a@x.com",
		"exp":   time.Now().Add(240 * time.Hour).Unix(),
	})
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	exp, ok := claims.Raw["exp"].(float64)
	require.True(t, ok)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), int64(exp), 5)
}
