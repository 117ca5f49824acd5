package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the full HTTP surface. Task routes sit behind the
// session middleware chain; auth routes resolve the session best-effort so
// the pages can reflect login state.
func (h *Handler) RegisterRoutes(e *echo.Echo, secret string) {
	e.GET("/", h.Home, h.OptionalSession)
	e.GET("/register", h.ShowRegister, h.OptionalSession)
	e.POST("/register", h.Register)
	e.GET("/login", h.ShowLogin, h.OptionalSession)
	e.POST("/login", h.Login)
	e.GET("/logout", h.Logout, h.OptionalSession)

	authed := e.Group("", RequireSession(secret), h.ResolveUser)
	authed.GET("/makelist", h.Makelist)
	authed.POST("/new-todo", h.NewTodo)
	authed.POST("/update_todos", h.UpdateTodos)
	authed.GET("/edit-task/:id", h.ShowEditTask)
	authed.POST("/edit-task/:id", h.EditTask)
	authed.GET("/delete/:id", h.DeleteTask)

	e.GET("/health", h.Health)
}
