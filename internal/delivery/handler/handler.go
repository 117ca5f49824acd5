package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"todolist-service/internal/application/services"
	"todolist-service/internal/domain/entities"
	"todolist-service/internal/infrastructure/session"
)

type Handler struct {
	auth   *services.AuthService
	todos  *services.TodoService
	tokens *session.TokenService
}

func NewHandler(auth *services.AuthService, todos *services.TodoService, tokens *session.TokenService) *Handler {
	return &Handler{auth: auth, todos: todos, tokens: tokens}
}

// Home renders the landing page --> GET /
func (h *Handler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "index", map[string]interface{}{
		"LoggedIn": CurrentUser(c) != nil,
	})
}

// ShowRegister renders the registration form --> GET /register
func (h *Handler) ShowRegister(c echo.Context) error {
	return c.Render(http.StatusOK, "register", map[string]interface{}{
		"Error": formError(c.QueryParam("error")),
	})
}

// Register creates an account and logs it in --> POST /register
func (h *Handler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	_, token, err := h.auth.Register(ctx,
		c.FormValue("email"),
		c.FormValue("password"),
		c.FormValue("name"),
	)
	switch err {
	case nil:
	case entities.ErrDuplicateEmail:
		// Same policy as the registration form always had: send them to
		// log in instead.
		return c.Redirect(http.StatusFound, "/login?error=registered")
	case entities.ErrMissingField:
		return c.Redirect(http.StatusFound, "/register?error=missing")
	default:
		return err
	}

	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusFound, "/makelist")
}

// ShowLogin renders the login form --> GET /login
func (h *Handler) ShowLogin(c echo.Context) error {
	return c.Render(http.StatusOK, "login", map[string]interface{}{
		"Error": formError(c.QueryParam("error")),
	})
}

// Login authenticates and establishes a session --> POST /login
func (h *Handler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	_, token, err := h.auth.Login(ctx, c.FormValue("email"), c.FormValue("password"))
	switch err {
	case nil:
	case entities.ErrUnknownEmail:
		return c.Redirect(http.StatusFound, "/login?error=unknown")
	case entities.ErrWrongPassword:
		return c.Redirect(http.StatusFound, "/login?error=password")
	case entities.ErrMissingField:
		return c.Redirect(http.StatusFound, "/login?error=missing")
	default:
		return err
	}

	h.setSessionCookie(c, token)
	return c.Redirect(http.StatusFound, "/makelist")
}

// Logout revokes the session and clears the cookie --> GET /logout
func (h *Handler) Logout(c echo.Context) error {
	if claims := sessionClaims(c); claims != nil {
		if err := h.auth.Logout(c.Request().Context(), claims.SessionID); err != nil {
			return err
		}
	}
	h.clearSessionCookie(c)

	return c.Render(http.StatusOK, "index", map[string]interface{}{
		"LoggedIn": false,
	})
}

// Makelist shows the current user's todos --> GET /makelist
func (h *Handler) Makelist(c echo.Context) error {
	user := CurrentUser(c)

	todos, err := h.todos.ListFor(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "makelist", map[string]interface{}{
		"Name":  user.Name,
		"Todos": todos,
	})
}

// NewTodo creates a task owned by the current user --> POST /new-todo
func (h *Handler) NewTodo(c echo.Context) error {
	user := CurrentUser(c)

	_, err := h.todos.Create(c.Request().Context(), user.ID, c.FormValue("new_todo"))
	if err == entities.ErrMissingField {
		return echo.NewHTTPError(http.StatusBadRequest, "new_todo is required")
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/makelist")
}

// UpdateTodos bulk-updates statuses from status_<id> fields --> POST /update_todos
func (h *Handler) UpdateTodos(c echo.Context) error {
	user := CurrentUser(c)

	form, err := c.FormParams()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	statuses := make(map[uint]string)
	for key, values := range form {
		if len(values) == 0 {
			continue
		}
		var id uint
		if _, err := fmt.Sscanf(key, "status_%d", &id); err == nil && id != 0 {
			statuses[id] = values[0]
		}
	}

	if err := h.todos.UpdateStatuses(c.Request().Context(), user.ID, statuses); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/makelist")
}

// ShowEditTask renders the edit form for an owned task --> GET /edit-task/:id
func (h *Handler) ShowEditTask(c echo.Context) error {
	user := CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	todo, err := h.todos.Get(c.Request().Context(), id, user.ID)
	if err == entities.ErrTodoNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "edit", map[string]interface{}{
		"Todo": todo,
	})
}

// EditTask updates the content of an owned task --> POST /edit-task/:id
func (h *Handler) EditTask(c echo.Context) error {
	user := CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	err = h.todos.UpdateContent(c.Request().Context(), id, user.ID, c.FormValue("edited-todo"))
	switch err {
	case nil:
	case entities.ErrTodoNotFound:
		return echo.NewHTTPError(http.StatusNotFound)
	case entities.ErrMissingField:
		return echo.NewHTTPError(http.StatusBadRequest, "edited-todo is required")
	default:
		return err
	}

	return c.Redirect(http.StatusFound, "/makelist")
}

// DeleteTask deletes an owned task --> GET /delete/:id
func (h *Handler) DeleteTask(c echo.Context) error {
	user := CurrentUser(c)

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}

	err = h.todos.Delete(c.Request().Context(), id, user.ID)
	if err == entities.ErrTodoNotFound {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusFound, "/makelist")
}

// Health reports liveness --> GET /health
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"service": "todolist-service",
		"time":    time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.tokens.TTL().Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

func formError(flag string) string {
	switch flag {
	case "registered":
		return "You've already signed up with that email, log in instead."
	case "unknown":
		return "That email does not exist, please try again."
	case "password":
		return "Wrong password."
	case "missing":
		return "Please fill in every field."
	default:
		return ""
	}
}
