package router

import (
	"atlas/internal/database"
	"atlas/internal/handler"
	"atlas/internal/handler/auth"
	"atlas/internal/handler/categories"
	"atlas/internal/handler/items"
	"atlas/internal/handler/tags"
	"atlas/internal/middleware"
	"atlas/internal/service"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Setup registers every route. Trailing slashes are stripped before routing
// so "/items/" and "/items" reach the same handler.
func Setup(e *echo.Echo, db database.DB, tm *service.TokenManager) {
	e.Pre(echomw.RemoveTrailingSlash())

	requireAuth := middleware.RequireAuth(tm, db)

	e.GET("/health", handler.HealthHandler(db))

	e.POST("/auth/register", auth.RegisterHandler(db))
	e.POST("/auth/login", auth.LoginHandler(db, tm))
	e.GET("/auth/me", auth.MeHandler(), requireAuth)

	apiItems := e.Group("/items", requireAuth)
	apiItems.POST("", items.CreateItemHandler(db))
	apiItems.GET("", items.ListItemsHandler(db))
	apiItems.GET("/:id", items.GetItemHandler(db))
	apiItems.PUT("/:id", items.UpdateItemHandler(db))
	apiItems.DELETE("/:id", items.DeleteItemHandler(db))

	apiTags := e.Group("/tags", requireAuth)
	apiTags.POST("", tags.CreateTagHandler(db))
	apiTags.GET("", tags.ListTagsHandler(db))
	apiTags.GET("/:id", tags.GetTagHandler(db))
	apiTags.PUT("/:id", tags.UpdateTagHandler(db))
	apiTags.DELETE("/:id", tags.DeleteTagHandler(db))

	apiCategories := e.Group("/categories", requireAuth)
	apiCategories.POST("", categories.CreateCategoryHandler(db))
	apiCategories.GET("", categories.ListCategoriesHandler(db))
	apiCategories.GET("/:id", categories.GetCategoryHandler(db))
	apiCategories.PUT("/:id", categories.UpdateCategoryHandler(db))
}
