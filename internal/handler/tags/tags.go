// Package tags serves the shared tag vocabulary.
package tags

import (
	"net/http"

	"atlas/internal/api"
	"atlas/internal/database"
	"atlas/internal/handler"
	"atlas/internal/service"

	"github.com/labstack/echo/v4"
)

var (
	createTag = service.CreateTag
	listTags  = service.ListTags
	getTag    = service.GetTag
	updateTag = service.UpdateTag
	deleteTag = service.DeleteTag
)

// CreateTagHandler adds a tag
// @Summary     Create tag
// @Tags        tags
// @Accept      json
// @Produce     json
// @Param       body body     api.TagRequest true "tag"
// @Success     200  {object} model.Tag
// @Failure     409  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /tags [post]
func CreateTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.TagRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		tag, err := createTag(c.Request().Context(), db, req.Name)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}

// ListTagsHandler lists all tags
// @Summary     List tags
// @Tags        tags
// @Produce     json
// @Success     200 {array} model.Tag
// @Security    OAuth2Password
// @Router      /tags [get]
func ListTagsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		tags, err := listTags(c.Request().Context(), db)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, tags)
	}
}

// GetTagHandler returns one tag
// @Summary     Get tag
// @Tags        tags
// @Produce     json
// @Param       id  path     int true "tag id"
// @Success     200 {object} model.Tag
// @Failure     404 {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /tags/{id} [get]
func GetTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		tag, err := getTag(c.Request().Context(), db, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}

// UpdateTagHandler renames a tag
// @Summary     Rename tag
// @Tags        tags
// @Accept      json
// @Produce     json
// @Param       id   path     int            true "tag id"
// @Param       body body     api.TagRequest true "tag"
// @Success     200  {object} model.Tag
// @Failure     404  {object} api.ErrorResponse
// @Failure     409  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /tags/{id} [put]
func UpdateTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		var req api.TagRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.RespondError(c, err)
		}
		tag, err := updateTag(c.Request().Context(), db, id, req.Name)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}

// DeleteTagHandler deletes a tag and detaches it from every item
// @Summary     Delete tag
// @Tags        tags
// @Produce     json
// @Param       id  path     int true "tag id"
// @Success     200 {object} model.Tag
// @Failure     404 {object} api.ErrorResponse
// @Security    OAuth2Password
// @Router      /tags/{id} [delete]
func DeleteTagHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.PathID(c)
		if err != nil {
			return handler.RespondError(c, err)
		}
		tag, err := deleteTag(c.Request().Context(), db, id)
		if err != nil {
			return handler.RespondError(c, err)
		}
		return c.JSON(http.StatusOK, tag)
	}
}
