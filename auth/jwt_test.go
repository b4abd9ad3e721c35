package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPrincipal() *Principal {
	return &Principal{
		EmployeeID: "9cf3b7d4-9a67-4a31-8f0b-2f40f9c3a111",
		Email:      "admin@abegarage.com",
		Role:       "admin",
	}
}

func TestSignAndParseRoundtrip(t *testing.T) {
	token, err := SignJWT("test-secret", testPrincipal(), time.Hour)
	require.NoError(t, err)

	claims, err := ParseAndValidate("test-secret", token)
	require.NoError(t, err)
	assert.Equal(t, "9cf3b7d4-9a67-4a31-8f0b-2f40f9c3a111", claims.EmployeeID)
	assert.Equal(t, "admin@abegarage.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "garage-backend", claims.Issuer)
}

func TestExpiredTokenRejected(t *testing.T) {
	token, err := SignJWT("test-secret", testPrincipal(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseAndValidate("test-secret", token)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	token, err := SignJWT("test-secret", testPrincipal(), time.Hour)
	require.NoError(t, err)

	_, err = ParseAndValidate("other-secret", token)
	assert.Error(t, err)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ParseAndValidate("test-secret", "not.a.token")
	assert.Error(t, err)
}
