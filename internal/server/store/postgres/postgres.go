// Package postgres is the PostgreSQL store backend. Object ids are uuids
// assigned on insert; ACL id lists are stored as JSONB so documents keep the
// same shape the catalog exposes on the wire.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/dbx"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/dmitrijs2005/filecatalog/internal/server/store"
	"github.com/dmitrijs2005/filecatalog/internal/server/store/postgres/migrations"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

type Manager struct {
	db    *sql.DB
	dirs  *DirectoryStore
	files *FileStore
}

// NewManager opens the database, verifies the connection and runs pending
// migrations.
func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	m := &Manager{
		db:    db,
		dirs:  &DirectoryStore{db: db, sqldb: db},
		files: &FileStore{db: db},
	}
	if err := m.runMigrations(ctx); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return m, nil
}

// gooseUpContext is a seam for testing without a live database.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

func (m *Manager) runMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *Manager) Directories() store.DirectoryStore { return m.dirs }
func (m *Manager) Files() store.FileStore            { return m.files }

func (m *Manager) Close(ctx context.Context) error {
	return m.db.Close()
}

func marshalIDs(ids []int64) ([]byte, error) {
	if ids == nil {
		ids = []int64{}
	}
	return json.Marshal(ids)
}

func unmarshalIDs(data []byte) ([]int64, error) {
	ids := []int64{}
	if len(data) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

type DirectoryStore struct {
	db dbx.DBTX
	// sqldb is the raw handle, needed to open transactions.
	sqldb *sql.DB
}

func (s *DirectoryStore) Insert(ctx context.Context, d *models.Directory) (string, error) {
	readers, err := marshalIDs(d.AllowedReaders)
	if err != nil {
		return "", err
	}
	writers, err := marshalIDs(d.AllowedWriters)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `
		INSERT INTO directories (id, name, parent_id, owner_id, is_public, allowed_readers, allowed_writers)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	if _, err := s.db.ExecContext(ctx, query,
		id, d.Name, d.ParentID, d.OwnerID, d.IsPublic, readers, writers); err != nil {
		return "", fmt.Errorf("insert directory: %w", err)
	}
	return id, nil
}

func (s *DirectoryStore) FindByID(ctx context.Context, id string) (*models.Directory, error) {
	query := `
		SELECT id, name, parent_id, owner_id, is_public, allowed_readers, allowed_writers
		FROM directories WHERE id = $1
	`
	var (
		d       models.Directory
		readers []byte
		writers []byte
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.ParentID, &d.OwnerID, &d.IsPublic, &readers, &writers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("find directory: %w", err)
	}
	if d.AllowedReaders, err = unmarshalIDs(readers); err != nil {
		return nil, err
	}
	if d.AllowedWriters, err = unmarshalIDs(writers); err != nil {
		return nil, err
	}
	d.Normalize()
	return &d, nil
}

func (s *DirectoryStore) Update(ctx context.Context, id string, upd models.DirectoryUpdate) error {
	set := []string{}
	args := []any{}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.ParentID != nil {
		add("parent_id", *upd.ParentID)
	}
	if upd.IsPublic != nil {
		add("is_public", *upd.IsPublic)
	}
	if upd.AllowedReaders != nil {
		readers, err := marshalIDs(*upd.AllowedReaders)
		if err != nil {
			return err
		}
		add("allowed_readers", readers)
	}
	if upd.AllowedWriters != nil {
		writers, err := marshalIDs(*upd.AllowedWriters)
		if err != nil {
			return err
		}
		add("allowed_writers", writers)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE directories SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update directory: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *DirectoryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM directories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete directory: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *DirectoryStore) ListByParent(ctx context.Context, parentID string) ([]*models.Directory, error) {
	query := `
		SELECT id, name, parent_id, owner_id, is_public, allowed_readers, allowed_writers
		FROM directories WHERE parent_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list directories: %w", err)
	}
	defer rows.Close()

	result := []*models.Directory{}
	for rows.Next() {
		var (
			d       models.Directory
			readers []byte
			writers []byte
		)
		if err := rows.Scan(&d.ID, &d.Name, &d.ParentID, &d.OwnerID, &d.IsPublic, &readers, &writers); err != nil {
			return nil, err
		}
		if d.AllowedReaders, err = unmarshalIDs(readers); err != nil {
			return nil, err
		}
		if d.AllowedWriters, err = unmarshalIDs(writers); err != nil {
			return nil, err
		}
		d.Normalize()
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DirectoryStore) CountByParent(ctx context.Context, parentID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM directories WHERE parent_id = $1`, parentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count directories: %w", err)
	}
	return n, nil
}

// DeleteIfEmpty runs the emptiness check and the delete in one transaction,
// so a child registered concurrently cannot be orphaned.
func (s *DirectoryStore) DeleteIfEmpty(ctx context.Context, id string) (bool, error) {
	deleted := false

	err := dbx.WithTx(ctx, s.sqldb, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var n int64
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM directories WHERE parent_id = $1`, id).Scan(&n); err != nil {
			return fmt.Errorf("count directories: %w", err)
		}
		if n > 0 {
			return nil
		}
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM files WHERE parent_directory_id = $1`, id).Scan(&n); err != nil {
			return fmt.Errorf("count files: %w", err)
		}
		if n > 0 {
			return nil
		}

		res, err := tx.ExecContext(ctx, `DELETE FROM directories WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete directory: %w", err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return common.ErrNotFound
		}
		deleted = true
		return nil
	})

	return deleted, err
}

type FileStore struct {
	db dbx.DBTX
}

func (s *FileStore) Insert(ctx context.Context, f *models.File) (string, error) {
	readers, err := marshalIDs(f.AllowedReaders)
	if err != nil {
		return "", err
	}
	writers, err := marshalIDs(f.AllowedWriters)
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	query := `
		INSERT INTO files (id, name, parent_directory_id, external_file_id, owner_id, is_public, allowed_readers, allowed_writers)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	if _, err := s.db.ExecContext(ctx, query,
		id, f.Name, f.ParentID, f.ExternalFileID, f.OwnerID, f.IsPublic, readers, writers); err != nil {
		return "", fmt.Errorf("insert file: %w", err)
	}
	return id, nil
}

func (s *FileStore) FindByID(ctx context.Context, id string) (*models.File, error) {
	query := `
		SELECT id, name, parent_directory_id, external_file_id, owner_id, is_public, allowed_readers, allowed_writers
		FROM files WHERE id = $1
	`
	var (
		f       models.File
		readers []byte
		writers []byte
	)
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.ParentID, &f.ExternalFileID, &f.OwnerID, &f.IsPublic, &readers, &writers)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("find file: %w", err)
	}
	if f.AllowedReaders, err = unmarshalIDs(readers); err != nil {
		return nil, err
	}
	if f.AllowedWriters, err = unmarshalIDs(writers); err != nil {
		return nil, err
	}
	f.Normalize()
	return &f, nil
}

func (s *FileStore) Update(ctx context.Context, id string, upd models.FileUpdate) error {
	set := []string{}
	args := []any{}

	add := func(col string, v any) {
		args = append(args, v)
		set = append(set, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if upd.Name != nil {
		add("name", *upd.Name)
	}
	if upd.IsPublic != nil {
		add("is_public", *upd.IsPublic)
	}
	if upd.AllowedReaders != nil {
		readers, err := marshalIDs(*upd.AllowedReaders)
		if err != nil {
			return err
		}
		add("allowed_readers", readers)
	}
	if upd.AllowedWriters != nil {
		writers, err := marshalIDs(*upd.AllowedWriters)
		if err != nil {
			return err
		}
		add("allowed_writers", writers)
	}
	if len(set) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE files SET %s WHERE id = $%d",
		strings.Join(set, ", "), len(args))

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update file: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM files WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (s *FileStore) ListByParent(ctx context.Context, parentID string) ([]*models.File, error) {
	query := `
		SELECT id, name, parent_directory_id, external_file_id, owner_id, is_public, allowed_readers, allowed_writers
		FROM files WHERE parent_directory_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	result := []*models.File{}
	for rows.Next() {
		var (
			f       models.File
			readers []byte
			writers []byte
		)
		if err := rows.Scan(&f.ID, &f.Name, &f.ParentID, &f.ExternalFileID, &f.OwnerID, &f.IsPublic, &readers, &writers); err != nil {
			return nil, err
		}
		if f.AllowedReaders, err = unmarshalIDs(readers); err != nil {
			return nil, err
		}
		if f.AllowedWriters, err = unmarshalIDs(writers); err != nil {
			return nil, err
		}
		f.Normalize()
		result = append(result, &f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *FileStore) CountByParent(ctx context.Context, parentID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM files WHERE parent_directory_id = $1`, parentID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count files: %w", err)
	}
	return n, nil
}

func (s *FileStore) DeleteByParent(ctx context.Context, parentID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM files WHERE parent_directory_id = $1`, parentID); err != nil {
		return fmt.Errorf("cascade delete files: %w", err)
	}
	return nil
}
