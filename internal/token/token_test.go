package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AnshDabra27/jet-set-go/internal/domain"
)

func TestManager_IssueAndParse(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	signed, err := m.Issue("u1", domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := m.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestManager_Parse_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	signed, err := m.Issue("u1", domain.RoleUser)
	require.NoError(t, err)

	_, err = other.Parse(signed)
	require.Error(t, err)
}

func TestManager_Parse_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	signed, err := m.Issue("u1", domain.RoleUser)
	require.NoError(t, err)

	_, err = m.Parse(signed)
	require.Error(t, err)
}

func TestManager_Parse_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Parse("not.a.token")
	require.Error(t, err)
}
