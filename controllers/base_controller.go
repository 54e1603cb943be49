package controllers

import (
	"kridavista-backend/lib/intake"
	apimodels "kridavista-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("failed to parse request body")
		return errors.New("failed to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.WithField("path", ctx.Path())
}

// SendError maps a pipeline error to its HTTP status. Validation failures
// echo their message; anything else is logged with full context and crosses
// the boundary as a generic 500.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, logMsg string) error {
	if intake.IsValidationError(err) {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	logger.WithError(err).Error(logMsg)
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError("Internal server error"))
}
