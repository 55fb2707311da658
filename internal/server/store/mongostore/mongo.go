package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/dmitrijs2005/filecatalog/internal/server/store"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const (
	directoryCollection = "directories"
	fileCollection      = "files"
)

type Manager struct {
	client *mongo.Client
	dirs   *DirectoryStore
	files  *FileStore
}

func NewManager(ctx context.Context, uri string, dbName string) (*Manager, error) {
	client, err := NewClient(ctx, uri)
	if err != nil {
		return nil, err
	}
	db := client.Database(dbName)
	return &Manager{
		client: client,
		dirs:   &DirectoryStore{col: db.Collection(directoryCollection)},
		files:  &FileStore{col: db.Collection(fileCollection)},
	}, nil
}

func (m *Manager) Directories() store.DirectoryStore { return m.dirs }
func (m *Manager) Files() store.FileStore            { return m.files }

func (m *Manager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// idFilter builds the _id filter for a hex id. A malformed id cannot match
// any stored document, so it is reported as not-found.
func idFilter(id string) (bson.M, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, common.ErrNotFound
	}
	return bson.M{"_id": oid}, nil
}

// directoryDoc is the stored shape of a directory. ACL fields may be absent
// on documents written before access control existed; decoding leaves them
// at their zero values and Normalize fills the defaults.
type directoryDoc struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Name           string        `bson:"name"`
	ParentID       string        `bson:"parent_id"`
	OwnerID        int64         `bson:"owner_id"`
	IsPublic       bool          `bson:"is_public"`
	AllowedReaders []int64       `bson:"allowed_readers"`
	AllowedWriters []int64       `bson:"allowed_writers"`
}

func (d *directoryDoc) toModel() *models.Directory {
	m := &models.Directory{
		ID:       d.ID.Hex(),
		Name:     d.Name,
		ParentID: d.ParentID,
		Access: models.Access{
			OwnerID:        d.OwnerID,
			IsPublic:       d.IsPublic,
			AllowedReaders: d.AllowedReaders,
			AllowedWriters: d.AllowedWriters,
		},
	}
	m.Normalize()
	return m
}

type DirectoryStore struct {
	col *mongo.Collection
}

func (s *DirectoryStore) Insert(ctx context.Context, d *models.Directory) (string, error) {
	doc := bson.M{
		"name":            d.Name,
		"parent_id":       d.ParentID,
		"owner_id":        d.OwnerID,
		"is_public":       d.IsPublic,
		"allowed_readers": d.AllowedReaders,
		"allowed_writers": d.AllowedWriters,
	}
	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert directory: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *DirectoryStore) FindByID(ctx context.Context, id string) (*models.Directory, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var doc directoryDoc
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("find directory: %w", err)
	}
	return doc.toModel(), nil
}

func (s *DirectoryStore) Update(ctx context.Context, id string, upd models.DirectoryUpdate) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.ParentID != nil {
		set["parent_id"] = *upd.ParentID
	}
	if upd.IsPublic != nil {
		set["is_public"] = *upd.IsPublic
	}
	if upd.AllowedReaders != nil {
		set["allowed_readers"] = *upd.AllowedReaders
	}
	if upd.AllowedWriters != nil {
		set["allowed_writers"] = *upd.AllowedWriters
	}
	if len(set) == 0 {
		return nil
	}

	res, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update directory: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *DirectoryStore) Delete(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}

	res, err := s.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete directory: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *DirectoryStore) ListByParent(ctx context.Context, parentID string) ([]*models.Directory, error) {
	cur, err := s.col.Find(ctx, bson.M{"parent_id": parentID})
	if err != nil {
		return nil, fmt.Errorf("list directories: %w", err)
	}
	defer cur.Close(ctx)

	result := []*models.Directory{}
	for cur.Next(ctx) {
		var doc directoryDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DirectoryStore) CountByParent(ctx context.Context, parentID string) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"parent_id": parentID})
	if err != nil {
		return 0, fmt.Errorf("count directories: %w", err)
	}
	return n, nil
}

// fileDoc is the stored shape of a file document.
type fileDoc struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	Name           string        `bson:"name"`
	ParentID       string        `bson:"parent_directory_id"`
	ExternalFileID string        `bson:"external_file_id"`
	OwnerID        int64         `bson:"owner_id"`
	IsPublic       bool          `bson:"is_public"`
	AllowedReaders []int64       `bson:"allowed_readers"`
	AllowedWriters []int64       `bson:"allowed_writers"`
}

func (d *fileDoc) toModel() *models.File {
	m := &models.File{
		ID:             d.ID.Hex(),
		Name:           d.Name,
		ParentID:       d.ParentID,
		ExternalFileID: d.ExternalFileID,
		Access: models.Access{
			OwnerID:        d.OwnerID,
			IsPublic:       d.IsPublic,
			AllowedReaders: d.AllowedReaders,
			AllowedWriters: d.AllowedWriters,
		},
	}
	m.Normalize()
	return m
}

type FileStore struct {
	col *mongo.Collection
}

func (s *FileStore) Insert(ctx context.Context, f *models.File) (string, error) {
	doc := bson.M{
		"name":                f.Name,
		"parent_directory_id": f.ParentID,
		"external_file_id":    f.ExternalFileID,
		"owner_id":            f.OwnerID,
		"is_public":           f.IsPublic,
		"allowed_readers":     f.AllowedReaders,
		"allowed_writers":     f.AllowedWriters,
	}
	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert file: %w", err)
	}
	return res.InsertedID.(bson.ObjectID).Hex(), nil
}

func (s *FileStore) FindByID(ctx context.Context, id string) (*models.File, error) {
	filter, err := idFilter(id)
	if err != nil {
		return nil, err
	}

	var doc fileDoc
	if err := s.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	return doc.toModel(), nil
}

func (s *FileStore) Update(ctx context.Context, id string, upd models.FileUpdate) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}

	set := bson.M{}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.IsPublic != nil {
		set["is_public"] = *upd.IsPublic
	}
	if upd.AllowedReaders != nil {
		set["allowed_readers"] = *upd.AllowedReaders
	}
	if upd.AllowedWriters != nil {
		set["allowed_writers"] = *upd.AllowedWriters
	}
	if len(set) == 0 {
		return nil
	}

	res, err := s.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("update file: %w", err)
	}
	if res.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	filter, err := idFilter(id)
	if err != nil {
		return err
	}

	res, err := s.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	if res.DeletedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *FileStore) ListByParent(ctx context.Context, parentID string) ([]*models.File, error) {
	cur, err := s.col.Find(ctx, bson.M{"parent_directory_id": parentID})
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer cur.Close(ctx)

	result := []*models.File{}
	for cur.Next(ctx) {
		var doc fileDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *FileStore) CountByParent(ctx context.Context, parentID string) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{"parent_directory_id": parentID})
	if err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return n, nil
}

func (s *FileStore) DeleteByParent(ctx context.Context, parentID string) error {
	_, err := s.col.DeleteMany(ctx, bson.M{"parent_directory_id": parentID})
	if err != nil {
		return fmt.Errorf("cascade delete files: %w", err)
	}
	return nil
}
