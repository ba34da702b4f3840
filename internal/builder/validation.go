package builder

import (
	"festiva/internal/payments"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations installs the builder's custom binding validators so
// enum-valued request fields are rejected at bind time
func RegisterValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterValidation("scheduletype", func(fl validator.FieldLevel) bool {
		return payments.ScheduleType(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("paymentmethod", func(fl validator.FieldLevel) bool {
		return payments.PaymentMethod(fl.Field().String()).IsValid()
	})
	v.RegisterValidation("bondstatus", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || payments.BondStatus(s).IsValid()
	})
}
