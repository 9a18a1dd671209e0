package errors

import (
	"errors"
	"fmt"
)

var (
	// Обмен с админ-API
	ErrFetchFailed    = fmt.Errorf("не удалось получить список заявок")
	ErrMutationFailed = fmt.Errorf("не удалось выполнить изменение")
	ErrLogoutFailed   = fmt.Errorf("не удалось выйти из системы")

	// Входные данные
	ErrValidation = fmt.Errorf("ошибка валидации")
)

// Кастомные типы ошибок
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func (e *InvalidInputError) Unwrap() error { return ErrValidation }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}

// HttpError описывает ответ админ-API с неуспешным статусом.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s (код %d): %v", e.Message, e.Code, e.Err)
	}
	return fmt.Sprintf("%s (код %d)", e.Message, e.Code)
}

func (e *HttpError) Unwrap() error { return e.Err }

// StatusCode достаёт HTTP-код из цепочки ошибок, 0 если его нет.
func StatusCode(err error) int {
	var httpErr *HttpError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}
	return 0
}
