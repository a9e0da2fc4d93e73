package objects

import (
	"bytes"
	"errors"

	"r2-client/core/logger"
	"r2-client/core/objectstore"
	"r2-client/core/server"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for objects.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the object routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/objects")
	group.Put("/:bucket/*", h.HandlePutObject)
	group.Delete("/:bucket/*", h.HandleDeleteObject)
}

// HandlePutObject uploads the request body as an object.
// @Summary Put Object
// @Description Upload the request body to bucket/key, replacing any existing object.
// @Tags objects
// @Accept octet-stream
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key (may contain slashes)"
// @Success 200 {object} objectstore.Result "Succeeded"
// @Failure 400 {object} map[string]string "Invalid bucket or key"
// @Failure 403 {object} objectstore.Result "Forbidden"
// @Failure 500 {object} objectstore.Result "Internal Server Error"
// @Failure 502 {object} objectstore.Result "Store failure"
// @Router /objects/{bucket}/{key} [put]
func (h *Handler) HandlePutObject(c *fiber.Ctx) error {
	bucket, key := params(c)
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Put(c.Context(), bytes.NewReader(c.Body()), bucket, key, logger.RayID(c))
	if err != nil {
		return h.fault(c, l, err)
	}

	if result.Succeeded() {
		c.Set(fiber.HeaderLocation, h.service.PublicURL(key))
	}
	return respond(c, result)
}

// HandleDeleteObject removes an object after checking that it exists.
// @Summary Delete Object
// @Description Delete bucket/key. A missing object is reported as NotFound and no delete is sent.
// @Tags objects
// @Produce json
// @Param bucket path string true "Bucket name"
// @Param key path string true "Object key (may contain slashes)"
// @Success 200 {object} objectstore.Result "Succeeded"
// @Failure 400 {object} map[string]string "Invalid bucket or key"
// @Failure 404 {object} objectstore.Result "Object not found"
// @Failure 502 {object} objectstore.Result "Store failure"
// @Failure 503 {object} map[string]string "Existence could not be determined"
// @Router /objects/{bucket}/{key} [delete]
func (h *Handler) HandleDeleteObject(c *fiber.Ctx) error {
	bucket, key := params(c)
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.Delete(c.Context(), bucket, key, logger.RayID(c))
	if err != nil {
		return h.fault(c, l, err)
	}
	return respond(c, result)
}

// params copies the route parameters out of the request buffer, as they
// outlive the request in the journal.
func params(c *fiber.Ctx) (bucket, key string) {
	return utils.CopyString(c.Params("bucket")), utils.CopyString(c.Params("*"))
}

func respond(c *fiber.Ctx, result *objectstore.Result) error {
	code := ""
	if !result.Succeeded() {
		code = objectstore.CodeInternalServerError
		if codes := result.Codes(); len(codes) > 0 {
			code = codes[0]
		}
	}
	return c.Status(server.StatusFor(code)).JSON(result)
}

func (h *Handler) fault(c *fiber.Ctx, l *zap.Logger, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, objectstore.ErrInvalidArgument):
		status = fiber.StatusBadRequest
	case errors.Is(err, objectstore.ErrExistenceUnknown), errors.Is(err, objectstore.ErrClosed):
		status = fiber.StatusServiceUnavailable
	}

	l.Error("Object request failed", zap.Int("status", status), zap.Error(err))
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
