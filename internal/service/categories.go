package service

import (
	"context"
	"errors"
	"strings"

	"placebook/backend/internal/models"
	"placebook/backend/internal/store"
)

// CategoryService manages the global category list.
type CategoryService struct {
	store store.Store
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(st store.Store) *CategoryService {
	return &CategoryService{store: st}
}

// List returns every category ordered by name.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.store.Categories().List(ctx)
}

// Create adds a category. Names are unique.
func (s *CategoryService) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)

	var created *models.Category
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		_, err := tx.Categories().FindByName(ctx, name)
		if err == nil {
			return fail(ErrCategoryAlreadyExists, "Category named '%s' already exists.", name)
		}
		if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		category := &models.Category{Name: name}
		if err := tx.Categories().Create(ctx, category); err != nil {
			if errors.Is(err, store.ErrDuplicate) {
				return fail(ErrCategoryAlreadyExists, "Category named '%s' already exists.", name)
			}
			return err
		}
		created = category
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Delete removes a category that no place refers to.
func (s *CategoryService) Delete(ctx context.Context, id uint) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		if _, err := tx.Categories().FindByID(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return fail(ErrCategoryNotFound, "Category not found with id: %d", id)
			}
			return err
		}

		count, err := tx.Places().CountByCategory(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return fail(ErrCategoryInUse, "Category %d is used by %d places", id, count)
		}

		return tx.Categories().Delete(ctx, id)
	})
}

// EnsureDefaults creates the named categories that do not exist yet and
// returns how many were added.
func (s *CategoryService) EnsureDefaults(ctx context.Context, names []string) (int, error) {
	added := 0
	for _, name := range names {
		_, err := s.Create(ctx, name)
		switch {
		case err == nil:
			added++
		case errors.Is(err, ErrCategoryAlreadyExists):
		default:
			return added, err
		}
	}
	return added, nil
}
