package postgres

import (
	"context"
	"strings"
	"time"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/kv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RecordModel mirrors the 'kv_records' table: one serialized record per
// key, the durable analogue of the original flat browser storage.
type RecordModel struct {
	Key       string `gorm:"primaryKey;type:text"`
	Value     []byte `gorm:"type:bytea;not null"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RecordModel) TableName() string {
	return "kv_records"
}

type store struct {
	db *gorm.DB
}

// NewStore wraps the database connection as a kv.Store.
func NewStore(db *gorm.DB) kv.Store {
	return &store{db: db}
}

// Get returns the record stored under key, or kv.ErrKeyNotFound.
func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	var record RecordModel
	err := s.db.WithContext(ctx).First(&record, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, kv.ErrKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to read record")
	}

	return record.Value, nil
}

// Put upserts the record under key. Each record write is atomic; nothing
// spans multiple records.
func (s *store) Put(ctx context.Context, key string, value []byte) error {
	record := RecordModel{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&record).Error
	if err != nil {
		return errors.Wrap(err, "failed to write record")
	}

	return nil
}

// Delete removes the record under key; absent keys are not an error.
func (s *store) Delete(ctx context.Context, key string) error {
	err := s.db.WithContext(ctx).Delete(&RecordModel{}, "key = ?", key).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete record")
	}

	return nil
}

// Keys lists every stored key starting with prefix.
func (s *store) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := s.db.WithContext(ctx).
		Model(&RecordModel{}).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list record keys")
	}

	return keys, nil
}

// escapeLike neutralizes LIKE wildcards in a literal prefix. The scoping
// keys contain underscores, which LIKE would otherwise treat as a
// single-character wildcard.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

	return replacer.Replace(s)
}
