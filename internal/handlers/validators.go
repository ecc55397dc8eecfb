package handlers

import (
	"github.com/editorialops/edit_tracking_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// registerCustomValidators wires domain enum checks into gin's binding
// validator so request DTOs can use them as struct tags.
func registerCustomValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("recordstatus", func(fl validator.FieldLevel) bool {
		return domain.RecordStatus(fl.Field().String()).IsValid()
	})

	_ = v.RegisterValidation("userrole", func(fl validator.FieldLevel) bool {
		return domain.UserRole(fl.Field().String()).IsValid()
	})
}
