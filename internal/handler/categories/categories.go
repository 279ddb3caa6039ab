// Package categories serves the shared category list.
package categories

import (
	"net/http"

	"atlas/internal/api"
	"atlas/internal/database"
	"atlas/internal/handler"
	"atlas/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	createCategory = service.CreateCategory
	listCategories = service.ListCategories
	getCategory    = service.GetCategory
	updateCategory = service.UpdateCategory
)

// CreateCategoryHandler adds a category
// @Summary     Create category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       body body     api.CategoryRequest true "category"
// @Success     200  {object} model.Category
// @Failure     422  {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /categories [post]
func CreateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CategoryRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		cat, err := createCategory(c.Request().Context(), db, req.Name)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, cat)
	}
}

// ListCategoriesHandler lists all categories
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} model.Category
// @Security    OAuth2Password
// @Router      /categories [get]
func ListCategoriesHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cats, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, cats)
	}
}

// GetCategoryHandler returns one category
// @Summary     Get category
// @Tags        categories
// @Produce     json
// @Param       id  path     int true "category id"
// @Success     200 {object} model.Category
// @Failure     404 {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /categories/{id} [get]
func GetCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		cat, err := getCategory(c.Request().Context(), db, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, cat)
	}
}

// UpdateCategoryHandler renames a category
// @Summary     Rename category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Param       id   path     int                 true "category id"
// @Param       body body     api.CategoryRequest true "category"
// @Success     200  {object} model.Category
// @Failure     404  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /categories/{id} [put]
func UpdateCategoryHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		var req api.CategoryRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		cat, err := updateCategory(c.Request().Context(), db, id, req.Name)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, cat)
	}
}
