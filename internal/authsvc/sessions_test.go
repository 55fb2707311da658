package authsvc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/filecatalog/internal/common"
)

func TestSessionStore_PutGetDelete(t *testing.T) {
	s := NewSessionStore(10, 0)

	require.NoError(t, s.Put("sess-1", 42, "a@example.com"))

	userID, email, err := s.Get("sess-1")
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "a@example.com", email)

	_, _, err = s.Get("unknown")
	assert.ErrorIs(t, err, common.ErrInvalidSession)

	s.Delete("sess-1")
	_, _, err = s.Get("sess-1")
	assert.ErrorIs(t, err, common.ErrInvalidSession)

	// deleting twice is fine
	s.Delete("sess-1")
}

func TestSessionStore_TableLimit(t *testing.T) {
	s := NewSessionStore(2, 0)

	require.NoError(t, s.Put("a", 1, ""))
	require.NoError(t, s.Put("b", 2, ""))

	err := s.Put("c", 3, "")
	assert.ErrorIs(t, err, common.ErrSessionTableFull)

	// replacing an existing id does not count against the limit
	require.NoError(t, s.Put("a", 9, ""))

	s.Delete("b")
	require.NoError(t, s.Put("c", 3, ""))
}

func TestSessionStore_Expiry(t *testing.T) {
	s := NewSessionStore(10, time.Minute)

	now := time.Now()
	s.now = func() time.Time { return now }

	require.NoError(t, s.Put("sess-1", 42, ""))

	_, _, err := s.Get("sess-1")
	require.NoError(t, err)

	s.now = func() time.Time { return now.Add(2 * time.Minute) }

	_, _, err = s.Get("sess-1")
	assert.ErrorIs(t, err, common.ErrInvalidSession)

	s.prune()
	assert.Equal(t, 0, s.Len())
}
