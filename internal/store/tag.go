package store

import (
	"context"
	"fmt"

	"atlas/internal/database"
	"atlas/internal/model"

	"github.com/jackc/pgx/v5"
)

func CreateTag(ctx context.Context, db database.Querier, name string) (*model.Tag, error) {
	t := &model.Tag{Name: name}
	row := db.QueryRow(ctx,
		`INSERT INTO tags (name) VALUES ($1) RETURNING id`,
		name,
	)
	if err := row.Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("CreateTag: %w", translate(err))
	}
	return t, nil
}

func GetTagByID(ctx context.Context, db database.Querier, id int) (*model.Tag, error) {
	t := &model.Tag{}
	row := db.QueryRow(ctx, `SELECT id, name FROM tags WHERE id = $1`, id)
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		return nil, fmt.Errorf("GetTagByID: %w", translate(err))
	}
	return t, nil
}

func ListTags(ctx context.Context, db database.Querier) ([]model.Tag, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM tags ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}
	tags, err := collectTags(rows)
	if err != nil {
		return nil, fmt.Errorf("ListTags: %w", err)
	}
	return tags, nil
}

// GetTagsByIDs returns the subset of ids that exist, ordered by id.
func GetTagsByIDs(ctx context.Context, db database.Querier, ids []int) ([]model.Tag, error) {
	if len(ids) == 0 {
		return []model.Tag{}, nil
	}
	rows, err := db.Query(ctx,
		`SELECT id, name FROM tags WHERE id = ANY($1) ORDER BY id`,
		ids,
	)
	if err != nil {
		return nil, fmt.Errorf("GetTagsByIDs: %w", err)
	}
	tags, err := collectTags(rows)
	if err != nil {
		return nil, fmt.Errorf("GetTagsByIDs: %w", err)
	}
	return tags, nil
}

func UpdateTag(ctx context.Context, db database.Querier, id int, name string) (*model.Tag, error) {
	t := &model.Tag{}
	row := db.QueryRow(ctx,
		`UPDATE tags SET name = $1 WHERE id = $2 RETURNING id, name`,
		name,
		id,
	)
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		return nil, fmt.Errorf("UpdateTag: %w", translate(err))
	}
	return t, nil
}

// DeleteTag removes the tag; its item_tags rows go with it by cascade.
func DeleteTag(ctx context.Context, db database.Querier, id int) (*model.Tag, error) {
	t := &model.Tag{}
	row := db.QueryRow(ctx,
		`DELETE FROM tags WHERE id = $1 RETURNING id, name`,
		id,
	)
	if err := row.Scan(&t.ID, &t.Name); err != nil {
		return nil, fmt.Errorf("DeleteTag: %w", translate(err))
	}
	return t, nil
}

func collectTags(rows pgx.Rows) ([]model.Tag, error) {
	defer rows.Close()
	tags := []model.Tag{}
	for rows.Next() {
		var t model.Tag
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
