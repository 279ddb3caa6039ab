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
	withTx          = database.WithTx
	insertItem      = store.CreateItem
	selectItem      = store.GetItem
	selectItems     = store.ListItems
	patchItem       = store.UpdateItem
	removeItem      = store.DeleteItem
	replaceItemTags = store.ReplaceItemTags
	listItemTags    = store.ListItemTags
	getTagsByIDs    = store.GetTagsByIDs
)

// NewItem is the input for CreateItem.
type NewItem struct {
	Name        string
	Description *string
	CategoryID  *int
	TagIDs      []int
}

// CreateItem stores an item owned by ownerID and links its tags. Either
// everything is written or nothing is.
func CreateItem(ctx context.Context, db database.DB, ownerID int, in NewItem) (*model.Item, error) {
	var out *model.Item
	err := withTx(ctx, db, func(q database.Querier) error {
		tagIDs, err := resolveTagIDs(ctx, q, in.TagIDs)
		if err != nil {
			return err
		}
		created, err := insertItem(ctx, q, &model.Item{
			Name:        in.Name,
			Description: in.Description,
			CategoryID:  in.CategoryID,
			OwnerID:     ownerID,
		})
		if err != nil {
			return err
		}
		if err := replaceItemTags(ctx, q, created.ID, tagIDs); err != nil {
			return err
		}
		out, err = loadItem(ctx, q, created.ID, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListItems returns one page of the owner's items in id order.
func ListItems(ctx context.Context, db database.DB, f model.ItemFilter) ([]model.Item, error) {
	if f.Skip < 0 {
		return nil, apperr.Validation("skip: gte=0")
	}
	if f.Limit < 1 || f.Limit > 100 {
		return nil, apperr.Validation("limit: between 1 and 100")
	}

	var out []model.Item
	err := withTx(ctx, db, func(q database.Querier) error {
		items, err := selectItems(ctx, q, f)
		if err != nil {
			return err
		}
		if err := attachTags(ctx, q, items); err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetItem returns the owner's item or NotFound. Items of other owners are
// indistinguishable from missing ones.
func GetItem(ctx context.Context, db database.DB, ownerID, id int) (*model.Item, error) {
	var out *model.Item
	err := withTx(ctx, db, func(q database.Querier) (err error) {
		out, err = loadItem(ctx, q, id, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateItem applies the non-nil fields of p. A non-nil TagIDs replaces the
// whole tag set.
func UpdateItem(ctx context.Context, db database.DB, ownerID, id int, p model.ItemPatch) (*model.Item, error) {
	var out *model.Item
	err := withTx(ctx, db, func(q database.Querier) error {
		if err := patchItem(ctx, q, id, ownerID, p); err != nil {
			return notFoundItem(err)
		}
		if p.TagIDs != nil {
			tagIDs, err := resolveTagIDs(ctx, q, *p.TagIDs)
			if err != nil {
				return err
			}
			if err := replaceItemTags(ctx, q, id, tagIDs); err != nil {
				return err
			}
		}
		var err error
		out, err = loadItem(ctx, q, id, ownerID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteItem removes the owner's item and returns it as it was.
func DeleteItem(ctx context.Context, db database.DB, ownerID, id int) (*model.Item, error) {
	var out *model.Item
	err := withTx(ctx, db, func(q database.Querier) error {
		it, err := loadItem(ctx, q, id, ownerID)
		if err != nil {
			return err
		}
		if err := removeItem(ctx, q, id, ownerID); err != nil {
			return notFoundItem(err)
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func loadItem(ctx context.Context, q database.Querier, id, ownerID int) (*model.Item, error) {
	it, err := selectItem(ctx, q, id, ownerID)
	if err != nil {
		return nil, notFoundItem(err)
	}
	items := []model.Item{*it}
	if err := attachTags(ctx, q, items); err != nil {
		return nil, err
	}
	return &items[0], nil
}

func attachTags(ctx context.Context, q database.Querier, items []model.Item) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]int, len(items))
	for i := range items {
		ids[i] = items[i].ID
	}
	byItem, err := listItemTags(ctx, q, ids)
	if err != nil {
		return err
	}
	for i := range items {
		if tags, ok := byItem[items[i].ID]; ok {
			items[i].Tags = tags
		} else {
			items[i].Tags = []model.Tag{}
		}
	}
	return nil
}

// resolveTagIDs drops duplicates and checks every remaining id exists.
func resolveTagIDs(ctx context.Context, q database.Querier, ids []int) ([]int, error) {
	distinct := make([]int, 0, len(ids))
	seen := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	if len(distinct) == 0 {
		return distinct, nil
	}
	tags, err := getTagsByIDs(ctx, q, distinct)
	if err != nil {
		return nil, err
	}
	if len(tags) != len(distinct) {
		return nil, apperr.UnresolvedReference("tag")
	}
	return distinct, nil
}

func notFoundItem(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return apperr.Wrap(apperr.NotFound("Item"), err)
	}
	return err
}
