package auth

import (
	"testing"
	"time"

	"bookrack/config"
	"bookrack/internal/domain/service"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	token, err := jwtService.Issue("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username())
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.Validate("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_material"
	otherService, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := otherService.Issue("alice")
	require.NoError(t, err)

	claims, err := jwtService.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_Expiry(t *testing.T) {
	clock := clockwork.NewFakeClock()
	jwtService, err := NewJWTServiceWithClock(testConfig(), clock)
	require.NoError(t, err)

	token, err := jwtService.Issue("alice")
	require.NoError(t, err)

	// Still valid just before the one hour boundary.
	clock.Advance(time.Hour - time.Second)
	claims, err := jwtService.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username())

	// Expired at and beyond the boundary.
	clock.Advance(2 * time.Second)
	claims, err = jwtService.Validate(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt access secret must be provided")
}

func TestJWTService_ConfiguredTTL(t *testing.T) {
	cfg := testConfig()
	cfg.Auth = &config.AuthConfig{TokenTTL: time.Minute}

	clock := clockwork.NewFakeClock()
	jwtService, err := NewJWTServiceWithClock(cfg, clock)
	require.NoError(t, err)

	token, err := jwtService.Issue("bob")
	require.NoError(t, err)

	clock.Advance(2 * time.Minute)
	_, err = jwtService.Validate(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}
