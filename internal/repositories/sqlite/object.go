package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"helloworld-api/internal/models"
	"helloworld-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

const (
	objectsTable = "objects"

	selectObjectQuery = `SELECT value FROM objects WHERE key = ?`
	upsertObjectQuery = `INSERT INTO objects (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	countObjectsQuery = `SELECT COUNT(*) FROM objects`
)

// ObjectRepository stores documents in the in-memory SQLite database.
// It does not own the connection; closing the database is the caller's job.
type ObjectRepository struct {
	baseRepository
}

// NewObjectRepository creates a new SQLite-backed object repository
func NewObjectRepository(db *sql.DB, logger *logrus.Logger) *ObjectRepository {
	return &ObjectRepository{
		baseRepository: newBaseRepository(db, objectsTable, logger),
	}
}

// Get implements repositories.ObjectRepository.Get
func (r *ObjectRepository) Get(ctx context.Context, key string) (models.Document, error) {
	var value []byte
	err := r.executeQueryRow(ctx, "get", selectObjectQuery, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(repositories.ObjectEntity, key)
		}
		return nil, repositories.NewRepositoryError("get", repositories.ObjectEntity, key, err)
	}

	return models.Document(value), nil
}

// Put implements repositories.ObjectRepository.Put
func (r *ObjectRepository) Put(ctx context.Context, key string, doc models.Document) error {
	if err := repositories.ValidateKey(key); err != nil {
		return repositories.NewRepositoryError("put", repositories.ObjectEntity, key, err)
	}

	value := doc.Bytes()
	if len(value) == 0 {
		value = []byte("null")
	}

	_, err := r.executeExec(ctx, "put", upsertObjectQuery, key, value, time.Now().UTC())
	return err
}

// Count implements repositories.ObjectRepository.Count
func (r *ObjectRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.executeQueryRow(ctx, "count", countObjectsQuery).Scan(&count); err != nil {
		return 0, repositories.NewRepositoryError("count", repositories.ObjectEntity, "", err)
	}
	return count, nil
}

// Close implements repositories.ObjectRepository.Close
func (r *ObjectRepository) Close() error {
	return nil
}
