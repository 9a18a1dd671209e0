// Файл: pkg/customvalidator/validators.go

package customvalidator

import (
	"github.com/go-playground/validator/v10"

	"request-board/pkg/constants"
)

// RegisterCustomValidations регистрирует правила для статусов заявок.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("status_filter", isStatusFilter); err != nil {
		return err
	}
	return nil
}

// New возвращает валидатор с уже зарегистрированными правилами.
func New() (*validator.Validate, error) {
	v := validator.New()
	if err := RegisterCustomValidations(v); err != nil {
		return nil, err
	}
	return v, nil
}

func isRequestStatus(fl validator.FieldLevel) bool {
	return constants.IsRequestStatus(fl.Field().String())
}

func isStatusFilter(fl validator.FieldLevel) bool {
	s := constants.NormalizeStatusFilter(fl.Field().String())
	return s == constants.StatusFilterAllWire || constants.IsRequestStatus(s)
}
