package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestDirectoryStore_InsertAndFind(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	id, err := m.Directories().Insert(ctx, &models.Directory{
		Name:   "docs",
		Access: models.Access{OwnerID: 1},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := m.Directories().FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "docs", got.Name)
	assert.NotNil(t, got.AllowedReaders, "reads must normalize ACL defaults")
	assert.NotNil(t, got.AllowedWriters)
}

func TestDirectoryStore_FindUnknown(t *testing.T) {
	m := NewManager()
	_, err := m.Directories().FindByID(context.Background(), "nope")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDirectoryStore_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	id, err := m.Directories().Insert(ctx, &models.Directory{Name: "a", ParentID: "p1"})
	require.NoError(t, err)

	// only the name is set; the parent must survive
	require.NoError(t, m.Directories().Update(ctx, id, models.DirectoryUpdate{Name: strPtr("b")}))

	got, err := m.Directories().FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Name)
	assert.Equal(t, "p1", got.ParentID)
}

func TestDirectoryStore_ParentQueries(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	root, err := m.Directories().Insert(ctx, &models.Directory{Name: "root"})
	require.NoError(t, err)
	_, err = m.Directories().Insert(ctx, &models.Directory{Name: "child", ParentID: root})
	require.NoError(t, err)

	children, err := m.Directories().ListByParent(ctx, root)
	require.NoError(t, err)
	assert.Len(t, children, 1)

	n, err := m.Directories().CountByParent(ctx, root)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	top, err := m.Directories().ListByParent(ctx, common.RootParentID)
	require.NoError(t, err)
	assert.Len(t, top, 1)
}

func TestFileStore_DeleteByParent(t *testing.T) {
	ctx := context.Background()
	m := NewManager()

	_, err := m.Files().Insert(ctx, &models.File{Name: "a", ParentID: "d1"})
	require.NoError(t, err)
	keep, err := m.Files().Insert(ctx, &models.File{Name: "b", ParentID: "d2"})
	require.NoError(t, err)

	n, err := m.Files().CountByParent(ctx, "d1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	require.NoError(t, m.Files().DeleteByParent(ctx, "d1"))

	n, err = m.Files().CountByParent(ctx, "d1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	inD1, err := m.Files().ListByParent(ctx, "d1")
	require.NoError(t, err)
	assert.Empty(t, inD1)

	_, err = m.Files().FindByID(ctx, keep)
	assert.NoError(t, err)
}

func TestFileStore_DeleteUnknown(t *testing.T) {
	m := NewManager()
	err := m.Files().Delete(context.Background(), "missing")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}
