package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrDuplicateKey is returned when an insert violates the id (or any
	// unique) constraint of a collection.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNoTenantContext is returned when a tenant-scoped operation is
	// attempted with no tenant in the context.
	ErrNoTenantContext = errors.New("no tenant context")

	// ErrNotTenantScoped is returned when a tenant-scoped accessor is used
	// on a collection that carries no tenant_id column.
	ErrNotTenantScoped = errors.New("collection is not tenant-scoped")

	// ErrFieldNotIndexed is returned when QueryByIndex is called with a
	// field that is not in the collection's declared index set.
	ErrFieldNotIndexed = errors.New("field is not indexed")

	ErrUnknownCollection = errors.New("unknown collection")
)

// translateError maps storage engine failures onto the store's error
// taxonomy. Anything that is not a uniqueness violation propagates
// unchanged apart from the collection annotation; there is no retry or
// fallback path.
func translateError(table string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", table, ErrDuplicateKey)
	}
	return fmt.Errorf("%s: %w", table, err)
}
