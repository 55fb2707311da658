package mongostore

import (
	"errors"
	"testing"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestIDFilter_MalformedIDIsNotFound(t *testing.T) {
	_, err := idFilter("not-a-hex-objectid")
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestIDFilter_ValidHex(t *testing.T) {
	oid := bson.NewObjectID()
	filter, err := idFilter(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, filter["_id"])
}

func TestDirectoryDoc_ToModelNormalizesACL(t *testing.T) {
	doc := directoryDoc{ID: bson.NewObjectID(), Name: "legacy"}
	m := doc.toModel()

	assert.Equal(t, doc.ID.Hex(), m.ID)
	assert.NotNil(t, m.AllowedReaders)
	assert.NotNil(t, m.AllowedWriters)
	assert.False(t, m.IsPublic)
}

func TestFileDoc_ToModelKeepsExternalID(t *testing.T) {
	doc := fileDoc{
		ID:             bson.NewObjectID(),
		Name:           "resume.pdf",
		ExternalFileID: "ext-1",
		OwnerID:        100,
		AllowedWriters: []int64{200},
	}
	m := doc.toModel()

	assert.Equal(t, "ext-1", m.ExternalFileID)
	assert.EqualValues(t, 100, m.OwnerID)
	assert.Equal(t, []int64{200}, m.AllowedWriters)
	assert.NotNil(t, m.AllowedReaders)
}
