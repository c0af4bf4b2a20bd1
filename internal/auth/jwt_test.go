package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewIssuer("test-secret")

	token, err := issuer.Token(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := NewIssuer("secret-one").Token(7)
	require.NoError(t, err)

	_, err = NewIssuer("secret-two").Verify(token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewIssuer("test-secret")
	for _, tok := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		_, err := issuer.Verify(tok)
		assert.Error(t, err, "token %q", tok)
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	issuer := NewIssuer("test-secret")
	token, err := issuer.Token(1)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = issuer.Verify(tampered)
	assert.Error(t, err)
}
