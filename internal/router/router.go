package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	// Private: requester / organizer
	CreateRequest(c *ginext.Context)
	CancelRequest(c *ginext.Context)
	GetUserRequests(c *ginext.Context)
	GetEventRequests(c *ginext.Context)
	UpdateRequestStatus(c *ginext.Context)
	CreateEvent(c *ginext.Context)
	GetUserEvents(c *ginext.Context)
	GetUserEvent(c *ginext.Context)
	UpdateUserEvent(c *ginext.Context)

	// Admin
	CreateUser(c *ginext.Context)
	ListUsers(c *ginext.Context)
	AdminUpdateEvent(c *ginext.Context)

	// Public
	ListEvents(c *ginext.Context)
	GetEvent(c *ginext.Context)
	SaveHit(c *ginext.Context)
	GetStats(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	Register(router, h)

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}

// Register навешивает маршруты API; используется и в тестах обработчиков.
func Register(router *ginext.Engine, h Handler) {
	users := router.Group("/users/:userId")
	{
		users.POST("/requests", h.CreateRequest)
		users.GET("/requests", h.GetUserRequests)
		users.PATCH("/requests/:requestId/cancel", h.CancelRequest)

		users.POST("/events", h.CreateEvent)
		users.GET("/events", h.GetUserEvents)
		users.GET("/events/:eventId", h.GetUserEvent)
		users.PATCH("/events/:eventId", h.UpdateUserEvent)
		users.GET("/events/:eventId/requests", h.GetEventRequests)
		users.PATCH("/events/:eventId/requests", h.UpdateRequestStatus)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/users", h.CreateUser)
		admin.GET("/users", h.ListUsers)
		admin.PATCH("/events/:eventId", h.AdminUpdateEvent)
	}

	router.GET("/events", h.ListEvents)
	router.GET("/events/:id", h.GetEvent)
	router.POST("/hit", h.SaveHit)
	router.GET("/stats", h.GetStats)
}
