package store

import (
	"context"
	"fmt"

	"atlas/internal/database"
	"atlas/internal/model"
)

func CreateCategory(ctx context.Context, db database.Querier, name string) (*model.Category, error) {
	c := &model.Category{Name: name}
	row := db.QueryRow(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`,
		name,
	)
	if err := row.Scan(&c.ID); err != nil {
		return nil, fmt.Errorf("CreateCategory: %w", translate(err))
	}
	return c, nil
}

func GetCategoryByID(ctx context.Context, db database.Querier, id int) (*model.Category, error) {
	c := &model.Category{}
	row := db.QueryRow(ctx, `SELECT id, name FROM categories WHERE id = $1`, id)
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, fmt.Errorf("GetCategoryByID: %w", translate(err))
	}
	return c, nil
}

func ListCategories(ctx context.Context, db database.Querier) ([]model.Category, error) {
	rows, err := db.Query(ctx, `SELECT id, name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	categories := []model.Category{}
	for rows.Next() {
		var c model.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return categories, nil
}

func UpdateCategory(ctx context.Context, db database.Querier, id int, name string) (*model.Category, error) {
	c := &model.Category{}
	row := db.QueryRow(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2 RETURNING id, name`,
		name,
		id,
	)
	if err := row.Scan(&c.ID, &c.Name); err != nil {
		return nil, fmt.Errorf("UpdateCategory: %w", translate(err))
	}
	return c, nil
}
