package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/Rohith16-code/velan-properties/handlers"
	"github.com/Rohith16-code/velan-properties/store"
)

func RegisterRoutes(e *echo.Echo, contacts, properties store.Store) {
	e.GET("/health", handlers.HealthCheck)

	api := e.Group("/api")
	api.GET("/", handlers.HealthCheck)

	cc := handlers.NewContactController(contacts)
	api.POST("/contacts", cc.CreateContact)
	api.GET("/contacts", cc.ListContacts)

	pc := handlers.NewPropertyController(properties)
	api.GET("/properties", pc.ListProperties)
	api.POST("/properties", pc.CreateProperty)
	api.PUT("/properties/:id", pc.UpdateProperty)
	api.DELETE("/properties/:id", pc.DeleteProperty)

	dc := handlers.NewDashboardController(contacts, properties)
	api.GET("/admin/dashboard", dc.GetDashboardStats)
}
