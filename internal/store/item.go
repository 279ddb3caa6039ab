package store

import (
	"context"
	"fmt"
	"strings"

	"atlas/internal/database"
	"atlas/internal/model"

	"github.com/jackc/pgx/v5"
)

const itemSelect = `
	SELECT i.id, i.name, i.description, i.category_id, i.owner_id, i.created_at,
	       c.id, c.name
	FROM items i
	LEFT JOIN categories c ON c.id = i.category_id`

func scanItem(row pgx.Row) (*model.Item, error) {
	it := &model.Item{}
	var (
		catID   *int
		catName *string
	)
	if err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.CategoryID,
		&it.OwnerID,
		&it.CreatedAt,
		&catID,
		&catName,
	); err != nil {
		return nil, err
	}
	if catID != nil && catName != nil {
		it.Category = &model.Category{ID: *catID, Name: *catName}
	}
	it.Tags = []model.Tag{}
	return it, nil
}

// CreateItem inserts the item row only; tags are attached with ReplaceItemTags.
func CreateItem(ctx context.Context, db database.Querier, it *model.Item) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO items (name, description, category_id, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		it.Name,
		it.Description,
		it.CategoryID,
		it.OwnerID,
	)
	if err := row.Scan(&it.ID, &it.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateItem: %w", translate(err))
	}
	return it, nil
}

// GetItem returns ErrNotFound both when the id is absent and when it
// belongs to a different owner.
func GetItem(ctx context.Context, db database.Querier, id, ownerID int) (*model.Item, error) {
	row := db.QueryRow(ctx,
		itemSelect+` WHERE i.id = $1 AND i.owner_id = $2`,
		id,
		ownerID,
	)
	it, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("GetItem: %w", translate(err))
	}
	return it, nil
}

// escapeLike makes s match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func ListItems(ctx context.Context, db database.Querier, f model.ItemFilter) ([]model.Item, error) {
	var (
		where = []string{"i.owner_id = $1"}
		args  = []any{f.OwnerID}
	)
	if f.Query != "" {
		args = append(args, escapeLike(f.Query))
		where = append(where, fmt.Sprintf("i.name ILIKE '%%' || $%d::text || '%%'", len(args)))
	}
	if f.CategoryID != nil {
		args = append(args, *f.CategoryID)
		where = append(where, fmt.Sprintf("i.category_id = $%d", len(args)))
	}
	args = append(args, f.Skip, f.Limit)
	sql := fmt.Sprintf("%s WHERE %s ORDER BY i.id OFFSET $%d LIMIT $%d",
		itemSelect, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("ListItems: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	return items, nil
}

// UpdateItem writes the non-nil scalar fields of p. Tags in p are ignored;
// callers use ReplaceItemTags. A patch without scalar fields only checks
// that the owned item exists.
func UpdateItem(ctx context.Context, db database.Querier, id, ownerID int, p model.ItemPatch) error {
	var (
		sets []string
		args []any
	)
	if p.Name != nil {
		args = append(args, *p.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if p.Description != nil {
		args = append(args, *p.Description)
		sets = append(sets, fmt.Sprintf("description = $%d", len(args)))
	}
	if p.CategoryID != nil {
		args = append(args, *p.CategoryID)
		sets = append(sets, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if len(sets) == 0 {
		sets = append(sets, "id = id")
	}
	args = append(args, id, ownerID)
	sql := fmt.Sprintf("UPDATE items SET %s WHERE id = $%d AND owner_id = $%d",
		strings.Join(sets, ", "), len(args)-1, len(args))

	tag, err := db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("UpdateItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateItem: %w", ErrNotFound)
	}
	return nil
}

// DeleteItem removes an owned item; item_tags rows cascade.
func DeleteItem(ctx context.Context, db database.Querier, id, ownerID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM items WHERE id = $1 AND owner_id = $2`,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("DeleteItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteItem: %w", ErrNotFound)
	}
	return nil
}

// ReplaceItemTags swaps the whole association set of an item for tagIDs.
// Run it inside a transaction together with the item write.
func ReplaceItemTags(ctx context.Context, db database.Querier, itemID int, tagIDs []int) error {
	if _, err := db.Exec(ctx, `DELETE FROM item_tags WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("ReplaceItemTags: %w", err)
	}
	if len(tagIDs) == 0 {
		return nil
	}
	if _, err := db.Exec(ctx,
		`INSERT INTO item_tags (item_id, tag_id)
		 SELECT $1, unnest($2::int[])
		 ON CONFLICT DO NOTHING`,
		itemID,
		tagIDs,
	); err != nil {
		return fmt.Errorf("ReplaceItemTags: %w", err)
	}
	return nil
}

// ListItemTags loads tags for the given items keyed by item id, each list
// ordered by tag id.
func ListItemTags(ctx context.Context, db database.Querier, itemIDs []int) (map[int][]model.Tag, error) {
	out := make(map[int][]model.Tag, len(itemIDs))
	if len(itemIDs) == 0 {
		return out, nil
	}
	rows, err := db.Query(ctx,
		`SELECT it.item_id, t.id, t.name
		 FROM item_tags it
		 JOIN tags t ON t.id = it.tag_id
		 WHERE it.item_id = ANY($1)
		 ORDER BY it.item_id, t.id`,
		itemIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItemTags: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			itemID int
			t      model.Tag
		)
		if err := rows.Scan(&itemID, &t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("ListItemTags: %w", err)
		}
		out[itemID] = append(out[itemID], t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListItemTags: %w", err)
	}
	return out, nil
}
