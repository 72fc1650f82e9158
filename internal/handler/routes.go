package handler

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the employee API on e. Mutating routes require a
// bearer token when jwtSecret is non-empty.
func RegisterRoutes(e *echo.Echo, h *EmployeeHandler, jwtSecret string) {
	e.GET("/health", HealthHandler)

	employees := e.Group("/employees")
	employees.GET("", h.ListHandler)
	employees.GET("/search", h.SearchHandler)
	employees.GET("/export", h.ExportHandler)
	employees.GET("/email/:email", h.GetByEmailHandler)
	employees.GET("/:id", h.GetHandler)

	var guard []echo.MiddlewareFunc
	if jwtSecret != "" {
		guard = append(guard, RequireJWT(jwtSecret))
	}
	employees.POST("", h.CreateHandler, guard...)
	employees.PUT("/:id", h.UpdateHandler, guard...)
	employees.DELETE("/:id", h.DeleteHandler, guard...)
}
