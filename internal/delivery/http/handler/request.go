package handler

import (
	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"github.com/safestreets-service/internal/pkg/errors"
	"github.com/safestreets-service/internal/pkg/validator"
)

// parseBody разбирает JSON тела и проверяет validate-теги
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body")
	}
	if err := validator.Validate(req); err != nil {
		return errors.ErrInvalidRequest.
			WithMessage(err.Error()).
			WithDetails(map[string]interface{}{"fields": validator.FailedFields(err)})
	}
	return nil
}

// reportIDParam - копия :id из пути. Строки из c.Params живут только до конца
// обработчика, а id попадает в состояние сессии (открытый попап).
func reportIDParam(c *fiber.Ctx) string {
	return fiberutils.CopyString(c.Params("id"))
}
