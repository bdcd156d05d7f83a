package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ParseAndValidate parses the request body into out and runs struct validation.
// Any failure is reported as a 400 with the offending fields named.
func ParseAndValidate(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		return BadRequest("invalid request body")
	}
	return ValidateRequest(out)
}

// ValidateRequest runs validator tags over s and folds failures into a single
// 400 error message.
func ValidateRequest(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return BadRequest(err.Error())
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fmt.Sprintf("%s is %s", fieldErr.Field(), fieldErr.Tag()))
	}
	return BadRequest(strings.Join(fields, ", "))
}
