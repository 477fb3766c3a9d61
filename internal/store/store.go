package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Nath333/multi-tenant-admin-sub001/pkg/logger"
)

// Store is the table store: one durable, indexed collection per entity
// type over an embedded SQLite database. Writes are atomic per record or
// per batch; there is no cross-collection transaction.
type Store struct {
	db          *gorm.DB
	log         *logger.Logger
	collections map[string]Collection
}

// New migrates every declared collection and returns a ready store.
func New(db *gorm.DB, log *logger.Logger) (*Store, error) {
	collections := make(map[string]Collection)
	for _, col := range Collections() {
		if err := db.AutoMigrate(col.Model); err != nil {
			return nil, fmt.Errorf("migrate %s: %w", col.Name(), err)
		}
		collections[col.Name()] = col
	}

	log.Info("table store ready", zap.Int("collections", len(collections)))

	return &Store{
		db:          db,
		log:         log,
		collections: collections,
	}, nil
}

// DB exposes the raw database handle. Callers that use it bypass tenant
// scoping entirely; enforcement is cooperative.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) collection(record Record) (Collection, error) {
	col, ok := s.collections[record.TableName()]
	if !ok {
		return Collection{}, fmt.Errorf("%s: %w", record.TableName(), ErrUnknownCollection)
	}
	return col, nil
}

// Insert adds one record. The caller assigns the id; a collision with an
// existing record fails with ErrDuplicateKey and leaves the stored record
// untouched.
func (s *Store) Insert(ctx context.Context, record Record) error {
	if _, err := s.collection(record); err != nil {
		return err
	}
	return translateError(record.TableName(), s.db.WithContext(ctx).Create(record).Error)
}

// BulkInsert adds many records of one collection as a single atomic batch.
// If any record violates a uniqueness constraint the whole batch is rolled
// back and the first conflict is reported.
func (s *Store) BulkInsert(ctx context.Context, record Record, records any) error {
	if _, err := s.collection(record); err != nil {
		return err
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(record).Create(records).Error
	})
	return translateError(record.TableName(), err)
}

// Count returns the number of records in a collection.
func (s *Store) Count(ctx context.Context, record Record) (int64, error) {
	if _, err := s.collection(record); err != nil {
		return 0, err
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(record).Count(&n).Error; err != nil {
		return 0, translateError(record.TableName(), err)
	}
	return n, nil
}

// Find loads every record of a collection into dest. Ordering is whatever
// the storage engine returns, in practice insertion order.
func (s *Store) Find(ctx context.Context, record Record, dest any) error {
	if _, err := s.collection(record); err != nil {
		return err
	}
	return translateError(record.TableName(), s.db.WithContext(ctx).Model(record).Find(dest).Error)
}

// QueryByIndex loads all records whose indexed field equals value. The
// field must be in the collection's declared index set; this also keeps
// the column name out of caller control.
func (s *Store) QueryByIndex(ctx context.Context, record Record, field string, value any, dest any) error {
	col, err := s.collection(record)
	if err != nil {
		return err
	}
	if !col.indexed(field) {
		return fmt.Errorf("%s.%s: %w", col.Name(), field, ErrFieldNotIndexed)
	}
	err = s.db.WithContext(ctx).Model(record).Where(field+" = ?", value).Find(dest).Error
	return translateError(col.Name(), err)
}

func (c Collection) indexed(field string) bool {
	for _, f := range c.Indexes {
		if f == field {
			return true
		}
	}
	return false
}
