package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"microshop/internal/apperrors"
	"microshop/internal/repositories"
	"microshop/pkg/validation"
)

// Prices travel as JSON numbers, not quoted strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Crud is the service surface the handler drives. *services.CrudService and
// its decorators satisfy it.
type Crud[T any, PT repositories.Model[T]] interface {
	Create(entity PT) (PT, error)
	GetByID(id uuid.UUID) (PT, error)
	GetAll() ([]T, error)
	Update(entity PT) (PT, error)
	Delete(id uuid.UUID) (bool, error)
}

// Binder supplies the per-resource wire mapping. Decode builds a new entity
// from a create request, Merge overlays an update request onto a fetched
// entity (absent fields keep their stored values), Respond shapes the
// outbound payload.
type Binder[T any, PT repositories.Model[T]] struct {
	Decode  func(c *fiber.Ctx) (PT, []validation.FieldError, error)
	Merge   func(c *fiber.Ctx, entity PT) ([]validation.FieldError, error)
	Respond func(entity PT) interface{}
}

// CrudHandler serves the five CRUD endpoints for one resource.
type CrudHandler[T any, PT repositories.Model[T]] struct {
	resource string
	service  Crud[T, PT]
	binder   Binder[T, PT]
	log      *logrus.Logger
}

// NewCrudHandler creates the HTTP adapter for one resource. The resource
// name is the plural path segment under /api/v1.
func NewCrudHandler[T any, PT repositories.Model[T]](resource string, service Crud[T, PT], binder Binder[T, PT], log *logrus.Logger) *CrudHandler[T, PT] {
	return &CrudHandler[T, PT]{
		resource: resource,
		service:  service,
		binder:   binder,
		log:      log,
	}
}

// RegisterRoutes mounts the resource under the given router group.
func (h *CrudHandler[T, PT]) RegisterRoutes(router fiber.Router) {
	routes := router.Group("/" + h.resource)
	routes.Get("/", h.HandleList)
	routes.Get("/:id", h.HandleGet)
	routes.Post("/", h.HandleCreate)
	routes.Put("/:id", h.HandleUpdate)
	routes.Delete("/:id", h.HandleDelete)
}

// HandleList responds 200 with the full, possibly empty, collection.
func (h *CrudHandler[T, PT]) HandleList(c *fiber.Ctx) error {
	entities, err := h.service.GetAll()
	if err != nil {
		return h.fail(c, err, "could not list "+h.resource)
	}
	responses := make([]interface{}, 0, len(entities))
	for i := range entities {
		responses = append(responses, h.binder.Respond(&entities[i]))
	}
	return c.JSON(responses)
}

// HandleGet responds 200 with the record, or 404 when it does not exist.
func (h *CrudHandler[T, PT]) HandleGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badID(c)
	}
	entity, err := h.service.GetByID(id)
	if err != nil {
		return h.fail(c, err, "could not get "+h.resource)
	}
	if entity == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	return c.JSON(h.binder.Respond(entity))
}

// HandleCreate validates the payload, persists the entity and responds 201
// with a Location header pointing at the canonical get-by-id route.
func (h *CrudHandler[T, PT]) HandleCreate(c *fiber.Ctx) error {
	entity, fieldErrs, err := h.binder.Decode(c)
	if err != nil {
		// A parse failure is the caller's fault; anything else the binder
		// raises (hashing, mapping) is ours.
		return h.fail(c, err, "invalid request body")
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  fieldErrs,
		})
	}
	created, err := h.service.Create(entity)
	if err != nil {
		return h.fail(c, err, "could not create "+h.resource)
	}
	c.Set(fiber.HeaderLocation, c.BaseURL()+"/api/v1/"+h.resource+"/"+created.GetID().String())
	return c.Status(fiber.StatusCreated).JSON(h.binder.Respond(created))
}

// HandleUpdate fetches the record, merges the submitted fields onto it and
// saves. Responds 404 when the record does not exist.
func (h *CrudHandler[T, PT]) HandleUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badID(c)
	}
	entity, err := h.service.GetByID(id)
	if err != nil {
		return h.fail(c, err, "could not get "+h.resource)
	}
	if entity == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	fieldErrs, err := h.binder.Merge(c, entity)
	if err != nil {
		return h.fail(c, err, "invalid request body")
	}
	if len(fieldErrs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  fieldErrs,
		})
	}
	updated, err := h.service.Update(entity)
	if err != nil {
		return h.fail(c, err, "could not update "+h.resource)
	}
	return c.JSON(h.binder.Respond(updated))
}

// HandleDelete responds 204 on removal, 404 when the record does not exist.
func (h *CrudHandler[T, PT]) HandleDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badID(c)
	}
	entity, err := h.service.GetByID(id)
	if err != nil {
		return h.fail(c, err, "could not get "+h.resource)
	}
	if entity == nil {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if _, err := h.service.Delete(id); err != nil {
		return h.fail(c, err, "could not delete "+h.resource)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// badBody marks a body-parse failure as a client error so the classifier
// answers 400 instead of 500.
func badBody(err error) error {
	return fmt.Errorf("malformed request body: %v: %w", err, apperrors.ErrInvalidArgument)
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "id must be a valid uuid",
	})
}

// fail classifies service errors. Guard failures are the caller's fault, and
// a not-found raised by a mutation that lost the check-then-act race stays a
// 404; everything else is a bare 500.
func (h *CrudHandler[T, PT]) fail(c *fiber.Ctx, err error, msg string) error {
	h.log.WithFields(logrus.Fields{"resource": h.resource, "error": err.Error()}).Error(msg)
	switch {
	case errors.Is(err, apperrors.ErrInvalidArgument):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": msg,
			"error":   err.Error(),
		})
	case errors.Is(err, apperrors.ErrNotFound):
		return c.SendStatus(fiber.StatusNotFound)
	default:
		return c.SendStatus(fiber.StatusInternalServerError)
	}
}
