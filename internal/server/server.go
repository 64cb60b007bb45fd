// Package server exposes the entity store over HTTP/JSON. Every route
// under /api requires a bearer identity token; the caller's user id is
// taken from the token and never from a request body.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/nhle/planner/internal/model"
	"github.com/nhle/planner/internal/seed"
	"github.com/nhle/planner/internal/store"
	"github.com/nhle/planner/internal/validation"
)

// maxBodySize caps request bodies before they are read into memory.
const maxBodySize = "1M"

// Server wires HTTP routes to the store, validation and seeding layers.
type Server struct {
	echo   *echo.Echo
	store  store.Store
	seeder *seed.Seeder
	secret []byte
	logger *logrus.Entry
}

// New builds a Server. secret is the HS256 key identity tokens are
// verified with.
func New(st store.Store, seeder *seed.Seeder, secret []byte, logger *logrus.Entry) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:   e,
		store:  st,
		seeder: seeder,
		secret: secret,
		logger: logger,
	}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxBodySize))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.WithFields(logrus.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency.String(),
				"requestId": v.RequestID,
			}).Info("request")
			return nil
		},
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.echo.GET("/healthz", s.health)

	api := s.echo.Group("/api", s.authenticate)
	api.GET("/auth/user", s.getAuthUser)

	todos := resource[model.Todo, model.NewTodo, model.TodoPatch]{
		kind:        "Todo",
		list:        s.store.GetTodos,
		create:      s.store.CreateTodo,
		update:      s.store.UpdateTodo,
		remove:      s.store.DeleteTodo,
		decodeNew:   validation.DecodeNewTodo,
		decodePatch: validation.DecodeTodoPatch,
	}
	todos.register(api.Group("/todos"))

	schedule := resource[model.ScheduleItem, model.NewScheduleItem, model.ScheduleItemPatch]{
		kind:        "Schedule item",
		list:        s.store.GetScheduleItems,
		create:      s.store.CreateScheduleItem,
		update:      s.store.UpdateScheduleItem,
		remove:      s.store.DeleteScheduleItem,
		decodeNew:   validation.DecodeNewScheduleItem,
		decodePatch: validation.DecodeScheduleItemPatch,
	}
	schedule.register(api.Group("/schedule"))

	assignments := resource[model.Assignment, model.NewAssignment, model.AssignmentPatch]{
		kind:        "Assignment",
		list:        s.store.GetAssignments,
		create:      s.store.CreateAssignment,
		update:      s.store.UpdateAssignment,
		remove:      s.store.DeleteAssignment,
		decodeNew:   validation.DecodeNewAssignment,
		decodePatch: validation.DecodeAssignmentPatch,
	}
	assignments.register(api.Group("/assignments"))

	quickTasks := resource[model.QuickTask, model.NewQuickTask, model.QuickTaskPatch]{
		kind:        "Quick task",
		list:        s.store.GetQuickTasks,
		create:      s.store.CreateQuickTask,
		update:      s.store.UpdateQuickTask,
		remove:      s.store.DeleteQuickTask,
		decodeNew:   validation.DecodeNewQuickTask,
		decodePatch: validation.DecodeQuickTaskPatch,
	}
	quickTasks.register(api.Group("/quick-tasks"))
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	if err := s.store.Ping(c.Request().Context()); err != nil {
		s.logger.WithError(err).Error("health check failed")
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"status": "unavailable"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

// handleError maps handler errors to JSON responses. Storage failures are
// logged and returned as an opaque 500.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	var validationErr *validation.Error
	switch {
	case errors.As(err, &validationErr):
		status = http.StatusBadRequest
		message = validationErr.Message
	case errors.As(err, &httpErr):
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	default:
		s.logger.WithError(err).WithFields(logrus.Fields{
			"method": c.Request().Method,
			"uri":    c.Request().RequestURI,
		}).Error("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, echo.Map{"message": message})
	}
	if err != nil {
		s.logger.WithError(err).Error("writing error response")
	}
}
