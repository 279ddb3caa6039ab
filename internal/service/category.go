package service

import (
	"context"
	"errors"

	"atlas/internal/apperr"
	"atlas/internal/database"
	"atlas/internal/model"
	"atlas/internal/store"
)

var (
	insertCategory   = store.CreateCategory
	selectCategory   = store.GetCategoryByID
	selectCategories = store.ListCategories
	renameCategory   = store.UpdateCategory
)

func CreateCategory(ctx context.Context, db database.DB, name string) (*model.Category, error) {
	return insertCategory(ctx, db, name)
}

func ListCategories(ctx context.Context, db database.DB) ([]model.Category, error) {
	return selectCategories(ctx, db)
}

func GetCategory(ctx context.Context, db database.DB, id int) (*model.Category, error) {
	c, err := selectCategory(ctx, db, id)
	if err != nil {
		return nil, categoryError(err)
	}
	return c, nil
}

func UpdateCategory(ctx context.Context, db database.DB, id int, name string) (*model.Category, error) {
	c, err := renameCategory(ctx, db, id, name)
	if err != nil {
		return nil, categoryError(err)
	}
	return c, nil
}

func categoryError(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.Wrap(apperr.NotFound("Category"), err)
	}
	return err
}
