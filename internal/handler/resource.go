package handler

import (
    "context"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/autism-support-api/internal/request"
    "github.com/iliyamo/autism-support-api/internal/service"
)

// Service is what the HTTP layer needs from a resource service.
type Service[E any] interface {
    Create(ctx context.Context, rec E) (E, error)
    GetAll(ctx context.Context, filter map[string]string) ([]E, error)
    GetByID(ctx context.Context, id string) (E, error)
    Update(ctx context.Context, id string, patch func(*E)) (E, error)
    Delete(ctx context.Context, id string) (service.Confirmation, error)
}

// IDValidator checks the :id path parameter and returns its canonical form.
type IDValidator interface {
    ID(id string) (string, error)
}

// Creator is a create schema that converts into a new record.
type Creator[E any] interface {
    Model() E
}

// Patch is an update schema that merges itself over a stored record.
type Patch[E any] interface {
    Apply(*E)
}

// Query is a list query schema bound from the query string.
type Query interface {
    Filter() map[string]string
}

// Resource serves the CRUD endpoints of one entity kind.
type Resource[E any] struct {
    svc      Service[E]
    ids      IDValidator
    newQuery func() Query
}

// NewResource serves svc with request.ListQuery as its list filter schema.
func NewResource[E any](svc Service[E], ids IDValidator) *Resource[E] {
    return &Resource[E]{
        svc:      svc,
        ids:      ids,
        newQuery: func() Query { return &request.ListQuery{} },
    }
}

// WithQuery replaces the list filter schema.  newQuery must return a
// pointer to a fresh struct on every call.
func (h *Resource[E]) WithQuery(newQuery func() Query) *Resource[E] {
    h.newQuery = newQuery
    return h
}

// List handles GET /.  Filters come from the query string.
func (h *Resource[E]) List(c echo.Context) error {
    q := h.newQuery()
    if err := bindQuery(c, q); err != nil {
        return err
    }
    ctx, cancel := requestContext(c)
    defer cancel()

    out, err := h.svc.GetAll(ctx, q.Filter())
    if err != nil {
        return err
    }
    return c.JSON(http.StatusOK, out)
}

// Get handles GET /:id.
func (h *Resource[E]) Get(c echo.Context) error {
    id, err := h.ids.ID(c.Param("id"))
    if err != nil {
        return err
    }
    ctx, cancel := requestContext(c)
    defer cancel()

    rec, err := h.svc.GetByID(ctx, id)
    if err != nil {
        return err
    }
    return c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /:id.
func (h *Resource[E]) Delete(c echo.Context) error {
    id, err := h.ids.ID(c.Param("id"))
    if err != nil {
        return err
    }
    ctx, cancel := requestContext(c)
    defer cancel()

    res, err := h.svc.Delete(ctx, id)
    if err != nil {
        return err
    }
    return c.JSON(http.StatusOK, res)
}

// Create returns the POST / handler for h using schema C.
func Create[C Creator[E], E any](h *Resource[E]) echo.HandlerFunc {
    return func(c echo.Context) error {
        var body C
        if err := bindBody(c, &body); err != nil {
            return err
        }
        ctx, cancel := requestContext(c)
        defer cancel()

        rec, err := h.svc.Create(ctx, body.Model())
        if err != nil {
            return err
        }
        return c.JSON(http.StatusCreated, rec)
    }
}

// Update returns the PUT /:id handler for h using schema U.  Fields absent
// from the body keep their stored values.
func Update[U Patch[E], E any](h *Resource[E]) echo.HandlerFunc {
    return func(c echo.Context) error {
        id, err := h.ids.ID(c.Param("id"))
        if err != nil {
            return err
        }
        var body U
        if err := bindBody(c, &body); err != nil {
            return err
        }
        ctx, cancel := requestContext(c)
        defer cancel()

        rec, err := h.svc.Update(ctx, id, body.Apply)
        if err != nil {
            return err
        }
        return c.JSON(http.StatusOK, rec)
    }
}
