package handlers

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/planwise/budget_planner_app/internal/utils/yearmonth"
)

// registerCustomValidations adds the "yearmonth" binding rule so request
// bodies can require strict YYYY-MM month keys declaratively.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("yearmonth", func(fl validator.FieldLevel) bool {
			_, err := yearmonth.Parse(fl.Field().String())
			return err == nil
		})
	}
}
