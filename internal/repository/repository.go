package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row matches the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write violates a uniqueness constraint.
	ErrConflict = errors.New("unique constraint violation")
	// ErrReferenceViolation is returned when a write points at a row that does
	// not exist, or a delete would leave rows pointing at nothing.
	ErrReferenceViolation = errors.New("foreign key violation")
	// ErrOutOfRange is returned when a value does not fit its column, such as
	// a number wider than its numeric(p,s) type (SQLSTATE 22003).
	ErrOutOfRange = errors.New("value out of range")
)

const (
	DefaultLimit = 100
	MaxLimit     = 1000
)

// Page selects a window of rows by offset and count.
type Page struct {
	Skip  int
	Limit int
}

func (p Page) normalized() Page {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Changes maps column names to their new values. Only the keys present are
// written, so zero values (0, "", false) are applied like any other value.
type Changes map[string]interface{}

// Set records a change for column.
func (c Changes) Set(column string, value interface{}) { c[column] = value }

// Repository is the CRUD contract shared by every entity.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, page Page) ([]T, error)
	Create(ctx context.Context, entity *T) error
	Update(ctx context.Context, id uint, changes Changes) (*T, error)
	Delete(ctx context.Context, id uint) error
}

// crudRepository is the GORM implementation of Repository. scope, when set, is
// applied to every read (used for preloads).
type crudRepository[T any] struct {
	db    *gorm.DB
	scope func(*gorm.DB) *gorm.DB
}

func newCRUDRepository[T any](db *gorm.DB, scope func(*gorm.DB) *gorm.DB) *crudRepository[T] {
	return &crudRepository[T]{db: db, scope: scope}
}

func (r *crudRepository[T]) reader(tx *gorm.DB) *gorm.DB {
	if r.scope == nil {
		return tx
	}
	return r.scope(tx)
}

func (r *crudRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.reader(r.db.WithContext(ctx)).First(&entity, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &entity, nil
}

func (r *crudRepository[T]) List(ctx context.Context, page Page) ([]T, error) {
	page = page.normalized()
	list := make([]T, 0)
	err := r.reader(r.db.WithContext(ctx)).
		Order("id ASC").
		Offset(page.Skip).
		Limit(page.Limit).
		Find(&list).Error
	if err != nil {
		return nil, translate(err)
	}
	return list, nil
}

func (r *crudRepository[T]) Create(ctx context.Context, entity *T) error {
	return translate(r.db.WithContext(ctx).Create(entity).Error)
}

// Update applies changes to the row with the given id and returns the row as
// stored afterwards. The read, the write and the reload share one transaction.
func (r *crudRepository[T]) Update(ctx context.Context, id uint, changes Changes) (*T, error) {
	var updated T
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current T
		if err := tx.First(&current, "id = ?", id).Error; err != nil {
			return err
		}
		if len(changes) > 0 {
			if err := tx.Model(&current).Updates(map[string]interface{}(changes)).Error; err != nil {
				return err
			}
		}
		return r.reader(tx).First(&updated, "id = ?", id).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &updated, nil
}

func (r *crudRepository[T]) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(new(T), "id = ?", id)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// translate maps driver and GORM errors onto the package sentinels. The
// message checks cover drivers that do not implement GORM's error translator.
func translate(err error) error {
	if err == nil {
		return nil
	}
	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "duplicate key"):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(msg, "foreign key constraint"),
		strings.Contains(msg, "violates foreign key"):
		return fmt.Errorf("%w: %v", ErrReferenceViolation, err)
	case strings.Contains(msg, "sqlstate 22003"),
		strings.Contains(msg, "numeric field overflow"),
		strings.Contains(msg, "out of range"):
		return fmt.Errorf("%w: %v", ErrOutOfRange, err)
	default:
		return err
	}
}
