package dto

import (
	"multichain-custody/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("network", validateNetwork)
	}
}

// validateNetwork accepts only supported deposit network ids.
func validateNetwork(fl validator.FieldLevel) bool {
	_, ok := domain.ParseNetwork(fl.Field().String())
	return ok
}
