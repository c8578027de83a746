package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendio/api/internal/core/domain"
)

var testIdentity = domain.Identity{ID: 42, Email: "test@example.com"}

func newTestCodec() *Codec {
	return NewCodec([]byte("access-secret"), []byte("refresh-secret"), 15*time.Minute, 7*24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	codec := newTestCodec()

	raw, err := codec.SignAccess(testIdentity)
	require.NoError(t, err)

	identity, err := codec.ParseAccess(raw)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	codec := newTestCodec()

	raw, expiresAt, err := codec.SignRefresh(testIdentity)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(codec.RefreshTTL()), expiresAt, 5*time.Second)

	identity, err := codec.ParseRefresh(raw)
	require.NoError(t, err)
	assert.Equal(t, testIdentity, identity)
}

func TestTokenTypeConfusionRejected(t *testing.T) {
	codec := NewCodec([]byte("shared"), []byte("shared"), time.Minute, time.Minute)

	access, err := codec.SignAccess(testIdentity)
	require.NoError(t, err)
	refresh, _, err := codec.SignRefresh(testIdentity)
	require.NoError(t, err)

	// Same secret on both sides, so only the type claim tells them apart.
	_, err = codec.ParseRefresh(access)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = codec.ParseAccess(refresh)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestExpiredTokenDistinguishedFromInvalid(t *testing.T) {
	expired := NewCodec([]byte("access-secret"), []byte("refresh-secret"), -time.Minute, -time.Minute)

	raw, err := expired.SignAccess(testIdentity)
	require.NoError(t, err)

	_, err = newTestCodec().ParseAccess(raw)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)

	_, err = newTestCodec().ParseAccess("not-a-jwt")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestWrongSecretRejected(t *testing.T) {
	codec := newTestCodec()
	other := NewCodec([]byte("other-access"), []byte("other-refresh"), time.Minute, time.Minute)

	raw, err := codec.SignAccess(testIdentity)
	require.NoError(t, err)

	_, err = other.ParseAccess(raw)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestUnsignedAlgRejected(t *testing.T) {
	claims := Claims{UserID: 42, Email: "test@example.com", Type: TypeAccess}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTestCodec().ParseAccess(raw)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestRefreshTokensDistinctPerIssue(t *testing.T) {
	codec := newTestCodec()

	// Two tokens for the same identity in the same second must not
	// collide; the jti claim guarantees it.
	first, _, err := codec.SignRefresh(testIdentity)
	require.NoError(t, err)
	second, _, err := codec.SignRefresh(testIdentity)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestClaimsDeterministic(t *testing.T) {
	codec := newTestCodec()

	for range 3 {
		raw, err := codec.SignAccess(testIdentity)
		require.NoError(t, err)

		identity, err := codec.ParseAccess(raw)
		require.NoError(t, err)
		assert.Equal(t, int64(42), identity.ID)
		assert.Equal(t, "test@example.com", identity.Email)
	}
}
