package items

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"atlas/internal/apperr"
	"atlas/internal/database"
	"atlas/internal/middleware"
	"atlas/internal/model"
	"atlas/internal/service"
	"atlas/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals() {
	createItem = service.CreateItem
	listItems = service.ListItems
	getItem = service.GetItem
	updateItem = service.UpdateItem
	deleteItem = service.DeleteItem
}

const ownerID = 7

func newCtx(method, target, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.NewCustomValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextUserKey, &model.User{ID: ownerID, Email: "o@x.io", IsActive: true})
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func sampleItem() *model.Item {
	return &model.Item{ID: 1, Name: "Lamp", OwnerID: ownerID, Tags: []model.Tag{{ID: 2, Name: "blue"}}}
}

func TestCreateItemHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{}

	var got service.NewItem
	createItem = func(_ context.Context, _ database.DB, owner int, in service.NewItem) (*model.Item, error) {
		require.Equal(t, ownerID, owner)
		got = in
		if len(in.TagIDs) > 0 && in.TagIDs[0] == 99 {
			return nil, apperr.UnresolvedReference("tag")
		}
		return sampleItem(), nil
	}

	c, rec := newCtx(http.MethodPost, "/items", `{"name":"Lamp","description":"desk","category_id":3,"tag_ids":[2]}`, "")
	require.NoError(t, CreateItemHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "desk", *got.Description)
	require.Equal(t, 3, *got.CategoryID)
	require.Equal(t, []int{2}, got.TagIDs)

	var body model.Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Lamp", body.Name)
	require.Len(t, body.Tags, 1)

	c, rec = newCtx(http.MethodPost, "/items", `{"name":"Lamp","tag_ids":[99]}`, "")
	require.NoError(t, CreateItemHandler(db)(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"detail":"one or more tag ids do not exist"}`, rec.Body.String())

	c, rec = newCtx(http.MethodPost, "/items", `{"name":""}`, "")
	require.NoError(t, CreateItemHandler(db)(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	c, rec = newCtx(http.MethodPost, "/items", `{"name":"`+strings.Repeat("x", 201)+`"}`, "")
	require.NoError(t, CreateItemHandler(db)(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	c, rec = newCtx(http.MethodPost, "/items", `{"name":"Lamp","description":"`+strings.Repeat("x", 1001)+`"}`, "")
	require.NoError(t, CreateItemHandler(db)(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	for _, body := range []string{
		`{"name":"Lamp","tag_ids":[1,99999999999]}`,
		`{"name":"Lamp","category_id":2147483648}`,
		`{"name":"La\u0000mp"}`,
	} {
		c, rec = newCtx(http.MethodPost, "/items", body, "")
		require.NoError(t, CreateItemHandler(db)(c))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
	}
}

func TestListItemsHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{}

	var got model.ItemFilter
	listItems = func(_ context.Context, _ database.DB, f model.ItemFilter) ([]model.Item, error) {
		got = f
		return []model.Item{*sampleItem()}, nil
	}

	c, rec := newCtx(http.MethodGet, "/items", "", "")
	require.NoError(t, ListItemsHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, model.ItemFilter{OwnerID: ownerID, Limit: 10}, got)

	c, rec = newCtx(http.MethodGet, "/items?skip=1&limit=2&q=alpha&category_id=4", "", "")
	require.NoError(t, ListItemsHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, got.Skip)
	require.Equal(t, 2, got.Limit)
	require.Equal(t, "alpha", got.Query)
	require.Equal(t, 4, *got.CategoryID)

	for _, target := range []string{
		"/items?limit=0",
		"/items?limit=101",
		"/items?skip=-1",
		"/items?skip=abc",
		"/items?category_id=x",
		"/items?category_id=2147483648",
		"/items?q=",
		"/items?q=a%00b",
	} {
		c, rec = newCtx(http.MethodGet, target, "", "")
		require.NoError(t, ListItemsHandler(db)(c))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
	}
}

func TestGetItemHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{}

	getItem = func(_ context.Context, _ database.DB, owner, id int) (*model.Item, error) {
		if id != 1 {
			return nil, apperr.NotFound("Item")
		}
		return sampleItem(), nil
	}

	c, rec := newCtx(http.MethodGet, "/items/1", "", "1")
	require.NoError(t, GetItemHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newCtx(http.MethodGet, "/items/2", "", "2")
	require.NoError(t, GetItemHandler(db)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail":"Item not found"}`, rec.Body.String())

	c, rec = newCtx(http.MethodGet, "/items/abc", "", "abc")
	require.NoError(t, GetItemHandler(db)(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	c, rec = newCtx(http.MethodGet, "/items/99999999999", "", "99999999999")
	require.NoError(t, GetItemHandler(db)(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateItemHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{}

	var got model.ItemPatch
	updateItem = func(_ context.Context, _ database.DB, owner, id int, p model.ItemPatch) (*model.Item, error) {
		got = p
		return sampleItem(), nil
	}

	c, rec := newCtx(http.MethodPut, "/items/1", `{"description":"new"}`, "1")
	require.NoError(t, UpdateItemHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Nil(t, got.Name)
	require.Nil(t, got.TagIDs)
	require.Equal(t, "new", *got.Description)

	c, rec = newCtx(http.MethodPut, "/items/1", `{"tag_ids":[]}`, "1")
	require.NoError(t, UpdateItemHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got.TagIDs)
	require.Empty(t, *got.TagIDs)

	c, rec = newCtx(http.MethodPut, "/items/1", `{"name":""}`, "1")
	require.NoError(t, UpdateItemHandler(db)(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	c, rec = newCtx(http.MethodPut, "/items/x", `{}`, "x")
	require.NoError(t, UpdateItemHandler(db)(c))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	for _, body := range []string{
		`{"tag_ids":[-2147483649]}`,
		`{"category_id":99999999999}`,
		`{"description":"\u0000"}`,
	} {
		c, rec = newCtx(http.MethodPut, "/items/1", body, "1")
		require.NoError(t, UpdateItemHandler(db)(c))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code, body)
	}
}

func TestDeleteItemHandler(t *testing.T) {
	t.Cleanup(restoreGlobals)
	db := &database.FakeDB{}

	deleteItem = func(_ context.Context, _ database.DB, owner, id int) (*model.Item, error) {
		if owner != ownerID || id != 1 {
			return nil, apperr.NotFound("Item")
		}
		return sampleItem(), nil
	}

	c, rec := newCtx(http.MethodDelete, "/items/1", "", "1")
	require.NoError(t, DeleteItemHandler(db)(c))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"name":"Lamp"`)

	c, rec = newCtx(http.MethodDelete, "/items/5", "", "5")
	require.NoError(t, DeleteItemHandler(db)(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandlersRequireUser(t *testing.T) {
	db := &database.FakeDB{}
	for _, h := range []echo.HandlerFunc{
		CreateItemHandler(db),
		ListItemsHandler(db),
		GetItemHandler(db),
		UpdateItemHandler(db),
		DeleteItemHandler(db),
	} {
		c, rec := newCtx(http.MethodGet, "/items", "", "1")
		c.Set(middleware.ContextUserKey, nil)
		require.NoError(t, h(c))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	}
}
