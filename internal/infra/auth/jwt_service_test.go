package auth

import (
	"testing"
	"time"

	"enroll/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T, ttl time.Duration) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Access = testSecret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: ttl}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)

	accountID := uuid.New()
	email := "a@b.com"

	token, err := jwtService.GenerateToken(accountID, email)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, email, claims.Email)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSignature(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)

	// Sign a structurally valid token with a different key.
	other := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	forged, err := other.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(forged)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

// signedTokenIssuedAt builds a token signed with the test secret whose
// issue time lies in the past, simulating a token of the given age.
func signedTokenIssuedAt(t *testing.T, issuedAt time.Time, ttl time.Duration) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		Email: "a@b.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		},
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	return signed
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	jwtService := newTestJWTService(t, time.Hour)
	ttl := 3600 * time.Second

	// One second of lifetime left: still valid.
	fresh := signedTokenIssuedAt(t, time.Now().Add(-3599*time.Second), ttl)
	claims, err := jwtService.ValidateToken(fresh)
	assert.NoError(t, err)
	assert.NotNil(t, claims)

	// One second past expiry: rejected.
	stale := signedTokenIssuedAt(t, time.Now().Add(-3601*time.Second), ttl)
	claims, err = jwtService.ValidateToken(stale)
	assert.Error(t, err)
	assert.Nil(t, claims)

	// Two hours old, as a client that kept a token across a long session.
	old := signedTokenIssuedAt(t, time.Now().Add(-2*time.Hour), ttl)
	claims, err = jwtService.ValidateToken(old)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenDuration(t *testing.T) {
	jwtService := newTestJWTService(t, 30*time.Minute)
	assert.Equal(t, 30*time.Minute, jwtService.AccessTokenDuration())

	// Zero config falls back to the default.
	withDefault := newTestJWTService(t, 0)
	assert.Equal(t, time.Hour, withDefault.AccessTokenDuration())
}
