package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/smcs-alumni/alumni-portal/internal/api/metrics"
	"github.com/smcs-alumni/alumni-portal/internal/core/ports"
)

// ContentHandler serves one content kind over HTTP. R is the request schema
// (bound and validated), T the domain record it decodes into. The same
// handler backs announcements, events and featured alumni; only the schema
// and the decode function differ.
type ContentHandler[R any, T any] struct {
	kind    string
	service ports.ContentService[T]
	decode  func(R) (*T, error)
}

func NewContentHandler[R any, T any](kind string, service ports.ContentService[T], decode func(R) (*T, error)) *ContentHandler[R, T] {
	return &ContentHandler[R, T]{kind: kind, service: service, decode: decode}
}

// List handles the admin dashboard listing.
func (h *ContentHandler[R, T]) List(c echo.Context) error {
	metrics.ContentListsTotal.WithLabelValues(h.kind, "admin").Inc()
	items, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// PublicList handles the unauthenticated home-page listing. Responses carry
// no-store headers so every poll reflects the store state immediately after
// an admin mutation.
func (h *ContentHandler[R, T]) PublicList(c echo.Context) error {
	metrics.ContentListsTotal.WithLabelValues(h.kind, "public").Inc()
	items, err := h.service.PublicList(c.Request().Context())
	if err != nil {
		return err
	}

	hdr := c.Response().Header()
	hdr.Set("Cache-Control", "no-cache, no-store, must-revalidate")
	hdr.Set("Pragma", "no-cache")
	hdr.Set("Expires", "0")
	return c.JSON(http.StatusOK, items)
}

func (h *ContentHandler[R, T]) Get(c echo.Context) error {
	item, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[R, T]) Create(c echo.Context) error {
	doc, err := h.bind(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), doc)
	if err != nil {
		return err
	}

	metrics.ContentWritesTotal.WithLabelValues(h.kind, "create").Inc()
	return c.JSON(http.StatusCreated, created)
}

func (h *ContentHandler[R, T]) Update(c echo.Context) error {
	doc, err := h.bind(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), doc)
	if err != nil {
		return err
	}

	metrics.ContentWritesTotal.WithLabelValues(h.kind, "update").Inc()
	return c.JSON(http.StatusOK, updated)
}

func (h *ContentHandler[R, T]) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.ContentWritesTotal.WithLabelValues(h.kind, "delete").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

func (h *ContentHandler[R, T]) bind(c echo.Context) (*T, error) {
	var req R
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return h.decode(req)
}
