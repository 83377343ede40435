package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"safarihub/internal/catalog"
	apperrors "safarihub/internal/errors"
	"safarihub/internal/service"
)

// CatalogHandler exposes the CRUD endpoints of one catalog kind. All four
// kinds share this generic handler; per-kind behavior lives entirely in the
// schema and the service.
//
// Create/Update accept multipart/form-data for kinds taking an upload and
// JSON otherwise. Both encodings are flattened into a field map so an update
// only touches the fields that were actually sent.
type CatalogHandler[T any, P catalog.ResourcePtr[T]] struct {
	svc    service.CatalogService[T, P]
	schema catalog.Schema
}

// NewCatalogHandler creates the handler for one kind.
func NewCatalogHandler[T any, P catalog.ResourcePtr[T]](svc service.CatalogService[T, P], schema catalog.Schema) *CatalogHandler[T, P] {
	return &CatalogHandler[T, P]{svc: svc, schema: schema}
}

// List godoc
// @Summary List all records of a catalog kind
// @Tags catalog
// @Produce json
// @Success 200 {array} interface{}
// @Failure 500 {object} errors.ErrorResponse
// @Router /{kind} [get]
func (h *CatalogHandler[T, P]) List(c echo.Context) error {
	records, err := h.svc.List(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, records)
}

// Get godoc
// @Summary Get one record by id
// @Tags catalog
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /{kind}/{id} [get]
func (h *CatalogHandler[T, P]) Get(c echo.Context) error {
	id, err := h.recordID(c)
	if err != nil {
		return toHTTPError(err)
	}
	record, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Create godoc
// @Summary Create a record
// @Tags catalog
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /{kind} [post]
func (h *CatalogHandler[T, P]) Create(c echo.Context) error {
	in, err := h.bindInput(c)
	if err != nil {
		return toHTTPError(err)
	}
	record, err := h.svc.Create(c.Request().Context(), in)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, record)
}

// Update godoc
// @Summary Update a record, merging only supplied fields
// @Tags catalog
// @Accept json,mpfd
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /{kind}/{id} [put]
func (h *CatalogHandler[T, P]) Update(c echo.Context) error {
	id, err := h.recordID(c)
	if err != nil {
		return toHTTPError(err)
	}
	in, err := h.bindInput(c)
	if err != nil {
		return toHTTPError(err)
	}
	record, err := h.svc.Update(c.Request().Context(), id, in)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a record
// @Tags catalog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /{kind}/{id} [delete]
func (h *CatalogHandler[T, P]) Delete(c echo.Context) error {
	id, err := h.recordID(c)
	if err != nil {
		return toHTTPError(err)
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": h.schema.Kind + " deleted successfully",
	})
}

// recordID parses the :id segment. A malformed id can never resolve to a
// record, so it reports NotFound rather than a separate bad-request shape.
func (h *CatalogHandler[T, P]) recordID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperrors.ErrNotFound
	}
	return id, nil
}

// bindInput flattens the request body into a field map plus optional upload.
func (h *CatalogHandler[T, P]) bindInput(c echo.Context) (service.CatalogInput, error) {
	in := service.CatalogInput{Fields: map[string]string{}}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return in, apperrors.NewValidationError("body", "must be valid multipart form data")
		}
		for name, vals := range form.Value {
			if len(vals) > 0 {
				in.Fields[name] = vals[0]
			}
		}
		if files := form.File[h.schema.MediaField]; len(files) > 0 {
			in.File = files[0]
		}
		return in, nil
	}

	var body map[string]any
	if err := json.NewDecoder(c.Request().Body).Decode(&body); err != nil {
		return in, apperrors.NewValidationError("body", "must be valid JSON")
	}
	for name, raw := range body {
		if s, ok := flatten(raw); ok {
			in.Fields[name] = s
		}
	}
	return in, nil
}

// flatten renders a JSON value as the string form the schema validator
// consumes. Arrays become comma-separated text, matching the multipart
// encoding of list fields.
func flatten(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	case []any:
		parts := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := flatten(item); ok {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, ","), true
	default:
		return fmt.Sprint(v), true
	}
}
