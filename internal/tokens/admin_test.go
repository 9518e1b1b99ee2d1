package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestSignAndParseAdminToken(t *testing.T) {
	secret := []byte("test-secret")
	now := time.Now()

	tok, exp, err := SignAdminToken("admin", secret, now, time.Hour)
	require.NoError(t, err)
	require.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := AdminClaimsFromToken(tok, secret)
	require.NoError(t, err)
	require.Equal(t, RoleAdmin, claims.Role)
	require.Equal(t, "admin", claims.Subject)
	require.NotEmpty(t, claims.ID)
}

func TestAdminTokenRejected(t *testing.T) {
	secret := []byte("test-secret")

	expired, _, err := SignAdminToken("admin", secret, time.Now().Add(-2*time.Hour), time.Hour)
	require.NoError(t, err)
	_, err = AdminClaimsFromToken(expired, secret)
	require.Error(t, err)

	tok, _, err := SignAdminToken("admin", secret, time.Now(), time.Hour)
	require.NoError(t, err)
	_, err = AdminClaimsFromToken(tok, []byte("other-secret"))
	require.Error(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{Role: RoleAdmin})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = AdminClaimsFromToken(unsigned, secret)
	require.Error(t, err)
}
