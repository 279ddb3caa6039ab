// Package items serves the owner-scoped item endpoints.
package items

import (
	"net/http"

	"atlas/internal/api"
	"atlas/internal/apperr"
	"atlas/internal/database"
	"atlas/internal/handler"
	"atlas/internal/middleware"
	"atlas/internal/model"
	"atlas/internal/service"

	"github.com/labstack/echo/v4"
)

const defaultLimit = 10

var (
	createItem = service.CreateItem
	listItems  = service.ListItems
	getItem    = service.GetItem
	updateItem = service.UpdateItem
	deleteItem = service.DeleteItem
)

func owner(c echo.Context) (*model.User, error) {
	u := middleware.CurrentUser(c)
	if u == nil {
		return nil, apperr.Unauthorized("Not authenticated")
	}
	return u, nil
}

// CreateItemHandler creates an item owned by the caller
// @Summary     Create item
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       body body     api.ItemCreateRequest true "item"
// @Success     200  {object} model.Item
// @Failure     400  {object} api.ErrorResponse
// @Failure     401  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /items [post]
func CreateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := owner(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		var req api.ItemCreateRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		it, err := createItem(c.Request().Context(), db, u.ID, service.NewItem{
			Name:        req.Name,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			TagIDs:      req.TagIDs,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, it)
	}
}

// ListItemsHandler pages through the caller's items
// @Summary     List items
// @Tags        items
// @Produce     json
// @Param       skip        query    int    false "offset"            default(0)
// @Param       limit       query    int    false "page size (1-100)" default(10)
// @Param       q           query    string false "case-insensitive name substring"
// @Param       category_id query    int    false "category filter"
// @Success     200         {array}  model.Item
// @Failure     401         {object} api.ErrorResponse
// @Failure     422         {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /items [get]
func ListItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := owner(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		q := api.ListItemsQuery{Limit: defaultLimit}
		var categoryID int32
		hasCategory := c.QueryParam("category_id") != ""
		err = echo.QueryParamsBinder(c).
			Int("skip", &q.Skip).
			Int("limit", &q.Limit).
			String("q", &q.Q).
			Int32("category_id", &categoryID).
			BindError()
		if err != nil {
			return handler.RespondError(c, handler.BindingError(err))
		}
		if hasCategory {
			id := int(categoryID)
			q.CategoryID = &id
		}
		if _, ok := c.QueryParams()["q"]; ok && q.Q == "" {
			return handler.RespondError(c, apperr.Validation("q: min=1"))
		}
		if err := c.Validate(&q); err != nil {
			return handler.RespondError(c, err)
		}

		items, err := listItems(c.Request().Context(), db, model.ItemFilter{
			OwnerID:    u.ID,
			Query:      q.Q,
			CategoryID: q.CategoryID,
			Skip:       q.Skip,
			Limit:      q.Limit,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, items)
	}
}

// GetItemHandler returns one of the caller's items
// @Summary     Get item
// @Tags        items
// @Produce     json
// @Param       id  path     int true "item id"
// @Success     200 {object} model.Item
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /items/{id} [get]
func GetItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := owner(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		it, err := getItem(c.Request().Context(), db, u.ID, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, it)
	}
}

// UpdateItemHandler applies a partial update to one of the caller's items
// @Summary     Update item
// @Description Omitted fields are unchanged. tag_ids replaces the whole tag set; [] clears it.
// @Tags        items
// @Accept      json
// @Produce     json
// @Param       id   path     int                   true "item id"
// @Param       body body     api.ItemUpdateRequest true "fields to change"
// @Success     200  {object} model.Item
// @Failure     400  {object} api.ErrorResponse
// @Failure     404  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /items/{id} [put]
func UpdateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := owner(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		var req api.ItemUpdateRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		it, err := updateItem(c.Request().Context(), db, u.ID, id, model.ItemPatch{
			Name:        req.Name,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			TagIDs:      req.TagIDs,
		})
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, it)
	}
}

// DeleteItemHandler deletes one of the caller's items and returns it
// @Summary     Delete item
// @Tags        items
// @Produce     json
// @Param       id  path     int true "item id"
// @Success     200 {object} model.Item
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /items/{id} [delete]
func DeleteItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		u, err := owner(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		it, err := deleteItem(c.Request().Context(), db, u.ID, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, it)
	}
}
