package validation

import (
	"errors"
	"strings"
)

// ErrValidation общий признак ошибки валидации, проверяется через errors.Is
var ErrValidation = errors.New("validation failed")

// MsgCheckOutNotAfterCheckIn текст ошибки для поля check_out при выезде не позже заезда
const MsgCheckOutNotAfterCheckIn = "дата выезда должна быть позже даты заезда"

// FieldError ошибка, привязанная к конкретному полю ввода
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Errors набор ошибок валидации по полям
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is позволяет писать errors.Is(err, ErrValidation)
func (e Errors) Is(target error) bool {
	return target == ErrValidation
}

// Has сообщает, есть ли ошибка для поля
func (e Errors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}

// NewFieldError создаёт ошибку валидации для одного поля
func NewFieldError(field, message string) Errors {
	return Errors{{Field: field, Message: message}}
}

// AsErrors извлекает набор ошибок из цепочки
func AsErrors(err error) (Errors, bool) {
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	return nil, false
}
