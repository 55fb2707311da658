package acl

import (
	"testing"

	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/stretchr/testify/assert"
)

func caller(id int64) models.Caller {
	return models.Caller{UserID: id, Authenticated: true}
}

func TestCanRead(t *testing.T) {
	private := models.Access{
		OwnerID:        100,
		AllowedReaders: []int64{300},
		AllowedWriters: []int64{200},
	}
	public := models.Access{OwnerID: 100, IsPublic: true}

	tests := []struct {
		name   string
		access models.Access
		caller models.Caller
		want   bool
	}{
		{"owner always reads", private, caller(100), true},
		{"allowed reader reads", private, caller(300), true},
		{"allowed writer implies read", private, caller(200), true},
		{"stranger denied", private, caller(999), false},
		{"anonymous denied on private", private, models.Anonymous, false},
		{"public readable by anyone", public, caller(999), true},
		{"public readable by anonymous", public, models.Anonymous, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanRead(tt.access, tt.caller))
		})
	}
}

func TestCanWrite(t *testing.T) {
	a := models.Access{
		OwnerID:        100,
		IsPublic:       true, // public never grants write
		AllowedReaders: []int64{300},
		AllowedWriters: []int64{200},
	}

	tests := []struct {
		name   string
		caller models.Caller
		want   bool
	}{
		{"owner always writes", caller(100), true},
		{"allowed writer writes", caller(200), true},
		{"reader membership never grants write", caller(300), false},
		{"stranger denied despite public", caller(999), false},
		{"anonymous denied", models.Anonymous, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanWrite(a, tt.caller))
		})
	}
}

func TestCanRead_EmptyListsAfterNormalize(t *testing.T) {
	a := models.Access{OwnerID: 1}
	a.Normalize()

	assert.NotNil(t, a.AllowedReaders)
	assert.NotNil(t, a.AllowedWriters)
	assert.True(t, CanRead(a, caller(1)))
	assert.False(t, CanRead(a, caller(2)))
}
