package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nhle/planner/internal/store"
)

// resource binds the four user-scoped verbs of one entity kind to its
// store operations and payload decoders. T is the entity, N its creation
// record and P its partial-update record.
type resource[T, N, P any] struct {
	kind        string
	list        func(ctx context.Context, userID string) ([]T, error)
	create      func(ctx context.Context, rec N) (*T, error)
	update      func(ctx context.Context, id, userID string, patch P) (*T, error)
	remove      func(ctx context.Context, id, userID string) (bool, error)
	decodeNew   func(raw []byte, userID string) (N, error)
	decodePatch func(raw []byte) (P, error)
}

func (r resource[T, N, P]) register(g *echo.Group) {
	g.GET("", r.handleList)
	g.POST("", r.handleCreate)
	g.PATCH("/:id", r.handleUpdate)
	g.DELETE("/:id", r.handleDelete)
}

func (r resource[T, N, P]) notFound() error {
	return echo.NewHTTPError(http.StatusNotFound, r.kind+" not found")
}

func (r resource[T, N, P]) handleList(c echo.Context) error {
	items, err := r.list(c.Request().Context(), userID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

func (r resource[T, N, P]) handleCreate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	rec, err := r.decodeNew(body, userID(c))
	if err != nil {
		return err
	}
	item, err := r.create(c.Request().Context(), rec)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

func (r resource[T, N, P]) handleUpdate(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}
	patch, err := r.decodePatch(body)
	if err != nil {
		return err
	}
	item, err := r.update(c.Request().Context(), c.Param("id"), userID(c), patch)
	if errors.Is(err, store.ErrNotFound) {
		return r.notFound()
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (r resource[T, N, P]) handleDelete(c echo.Context) error {
	deleted, err := r.remove(c.Request().Context(), c.Param("id"), userID(c))
	if err != nil {
		return err
	}
	if !deleted {
		return r.notFound()
	}
	return c.NoContent(http.StatusNoContent)
}
