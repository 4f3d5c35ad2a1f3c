package token

import (
	"testing"
	"time"

	autherrors "go-inspecta/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("secret", time.Hour)

	signed, exp, err := m.Issue("sid-1", "12345", "qc_field")
	assert.NoError(t, err)
	assert.NotEmpty(t, signed)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.Parse(signed)
	assert.NoError(t, err)
	assert.Equal(t, "sid-1", claims.SessionID)
	assert.Equal(t, "12345", claims.Username)
	assert.Equal(t, "qc_field", claims.Role)
}

func TestManager_Parse(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := NewManager("secret", time.Hour).Parse("")
		assert.ErrorIs(t, err, autherrors.ErrTokenMissing)
	})

	t.Run("wrong secret", func(t *testing.T) {
		signed, _, _ := NewManager("a", time.Hour).Issue("sid", "u", "admin")
		_, err := NewManager("b", time.Hour).Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		m := NewManager("secret", time.Minute)
		m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		signed, _, _ := m.Issue("sid", "u", "admin")

		_, err := NewManager("secret", time.Minute).Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrTokenExpired)
	})

	t.Run("unexpected signing method", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: "sid", Username: "u"})
		signed, _ := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)

		_, err := NewManager("secret", time.Hour).Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})

	t.Run("missing session id", func(t *testing.T) {
		m := NewManager("secret", time.Hour)
		signed, _, _ := m.Issue("", "u", "admin")
		_, err := m.Parse(signed)
		assert.ErrorIs(t, err, autherrors.ErrInvalidToken)
	})
}
