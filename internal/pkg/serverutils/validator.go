package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts failures into a
// 400 fiber error with a readable field list.
func ValidateRequest(request interface{}) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fiber.NewError(fiber.StatusBadRequest, "Validation failed: "+strings.Join(fields, ", "))
}
