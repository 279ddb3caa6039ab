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
	insertTag  = store.CreateTag
	selectTag  = store.GetTagByID
	selectTags = store.ListTags
	renameTag  = store.UpdateTag
	removeTag  = store.DeleteTag
)

func CreateTag(ctx context.Context, db database.DB, name string) (*model.Tag, error) {
	tag, err := insertTag(ctx, db, name)
	if err != nil {
		return nil, tagError(err)
	}
	return tag, nil
}

func ListTags(ctx context.Context, db database.DB) ([]model.Tag, error) {
	return selectTags(ctx, db)
}

func GetTag(ctx context.Context, db database.DB, id int) (*model.Tag, error) {
	tag, err := selectTag(ctx, db, id)
	if err != nil {
		return nil, tagError(err)
	}
	return tag, nil
}

// UpdateTag renames a tag. Renaming to a name held by another tag is a
// Conflict.
func UpdateTag(ctx context.Context, db database.DB, id int, name string) (*model.Tag, error) {
	tag, err := renameTag(ctx, db, id, name)
	if err != nil {
		return nil, tagError(err)
	}
	return tag, nil
}

// DeleteTag removes a tag and its item associations and returns it.
func DeleteTag(ctx context.Context, db database.DB, id int) (*model.Tag, error) {
	tag, err := removeTag(ctx, db, id)
	if err != nil {
		return nil, tagError(err)
	}
	return tag, nil
}

func tagError(err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return apperr.Wrap(apperr.NotFound("Tag"), err)
	case errors.Is(err, store.ErrDuplicate):
		return apperr.Wrap(apperr.Conflict("Tag name already exists"), err)
	}
	return err
}
