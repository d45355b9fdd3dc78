package database

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// crudRepo holds the table operations every collection entity shares. order is applied to
// FindAll in the given sequence.
type crudRepo[T any] struct {
	db    *gorm.DB
	order []string
}

func newCrudRepo[T any](db *gorm.DB, order ...string) crudRepo[T] {
	return crudRepo[T]{db: db, order: order}
}

// FindAll returns every row in display order.
func (r crudRepo[T]) FindAll(ctx context.Context) ([]*T, error) {
	var rows []*T
	query := r.db.WithContext(ctx)
	for _, o := range r.order {
		query = query.Order(o)
	}
	err := query.Find(&rows).Error
	return rows, err
}

// FindByID returns gorm.ErrRecordNotFound when no row has the id.
func (r crudRepo[T]) FindByID(ctx context.Context, id uuid.UUID) (*T, error) {
	var row T
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Add inserts a new row; the id is assigned by the model's BeforeCreate hook.
func (r crudRepo[T]) Add(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Update overwrites every column of an existing row except its id and creation time.
func (r crudRepo[T]) Update(ctx context.Context, row *T) error {
	return updateAll(r.db.WithContext(ctx), row)
}

// Delete removes the row with the given id.
func (r crudRepo[T]) Delete(ctx context.Context, id uuid.UUID) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// updateAll writes zero values too, so clearing an optional field sticks. Unlike Save it never
// falls back to an insert when the row has disappeared.
func updateAll(db *gorm.DB, row any) error {
	tx := db.Model(row).Select("*").Omit("id", "created_at").Updates(row)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
