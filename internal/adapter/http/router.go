package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Health    *Handler
	Items     *ItemHandler
	Claims    *ClaimHandler
	Reports   *ReportHandler
	Directory *DirectoryHandler
	Metrics   http.Handler // optional
}

// RegisterRoutes mounts the API on e. mutating wraps every POST/PUT/DELETE
// route (idempotency).
func RegisterRoutes(e *echo.Echo, h Handlers, mutating ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		e.GET("/metrics", echo.WrapHandler(h.Metrics))
	}

	e.POST("/users", h.Directory.CreateUser, mutating...)
	e.GET("/users", h.Directory.ListUsers)
	e.GET("/users/:user_id", h.Directory.GetUser)
	e.PUT("/users/:user_id", h.Directory.UpdateUser, mutating...)
	e.DELETE("/users/:user_id", h.Directory.DeleteUser, mutating...)

	e.POST("/locations", h.Directory.CreateLocation, mutating...)
	e.GET("/locations", h.Directory.ListLocations)
	e.GET("/locations/:location_id", h.Directory.GetLocation)
	e.PUT("/locations/:location_id", h.Directory.UpdateLocation, mutating...)
	e.DELETE("/locations/:location_id", h.Directory.DeleteLocation, mutating...)

	e.POST("/items", h.Items.CreateItem, mutating...)
	e.GET("/items", h.Items.ListItems)
	e.GET("/items/:item_id", h.Items.GetItem)
	e.PUT("/items/:item_id", h.Items.UpdateItem, mutating...)
	e.PUT("/items/:item_id/status", h.Items.SetItemStatus, mutating...)

	e.POST("/claims", h.Claims.FileClaim, mutating...)
	e.GET("/claims", h.Claims.ListClaims)
	e.GET("/claims/:claim_id", h.Claims.GetClaim)
	e.POST("/claims/:claim_id/resolve", h.Claims.ResolveClaim, mutating...)

	r := e.Group("/reports")
	r.GET("/categories", h.Reports.CategoryCounts)
	r.GET("/claims", h.Reports.ClaimOverview)
	r.GET("/top-reporters", h.Reports.AboveAverageReporters)
	r.GET("/users/:user_id/item-count", h.Reports.CountItemsByUser)
}
