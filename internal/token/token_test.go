package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestProvider_IssueAndVerify(t *testing.T) {
	provider := NewProvider([]byte("test-secret"), "saas-rbac-api", time.Hour)

	tokenString, err := provider.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	userID, err := provider.Verify(tokenString)
	require.NoError(t, err)
	require.Equal(t, "user-123", userID)
}

func TestProvider_Verify_WrongSecret(t *testing.T) {
	issuer := NewProvider([]byte("secret-a"), "saas-rbac-api", time.Hour)
	verifier := NewProvider([]byte("secret-b"), "saas-rbac-api", time.Hour)

	tokenString, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestProvider_Verify_Expired(t *testing.T) {
	provider := NewProvider([]byte("test-secret"), "saas-rbac-api", -time.Minute)

	tokenString, err := provider.Issue("user-123")
	require.NoError(t, err)

	_, err = provider.Verify(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestProvider_Verify_WrongIssuer(t *testing.T) {
	other := NewProvider([]byte("test-secret"), "someone-else", time.Hour)
	provider := NewProvider([]byte("test-secret"), "saas-rbac-api", time.Hour)

	tokenString, err := other.Issue("user-123")
	require.NoError(t, err)

	_, err = provider.Verify(tokenString)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestProvider_Verify_Garbage(t *testing.T) {
	provider := NewProvider([]byte("test-secret"), "saas-rbac-api", time.Hour)

	_, err := provider.Verify("not.a.token")
	require.ErrorIs(t, err, ErrInvalidToken)
}
