package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-HotelReservations/internal/domain"
)

// Validator обёртка над go-playground/validator с переводом ошибок в FieldError
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)
	registerAliases(v)
	return &Validator{v: v}
}

// registerAliases связывает доменные ограничения с тегами валидатора
func registerAliases(v *validator.Validate) {
	v.RegisterAlias("guest_name", fmt.Sprintf("required,min=%d,max=%d", domain.MinGuestNameLength, domain.MaxGuestNameLength))
	v.RegisterAlias("guest_phone", fmt.Sprintf("required,min=%d,max=%d", domain.MinGuestPhoneLength, domain.MaxGuestPhoneLength))
	v.RegisterAlias("guests", fmt.Sprintf("min=%d", domain.MinGuests))
	v.RegisterAlias("special_requests", fmt.Sprintf("max=%d", domain.MaxSpecialRequestsLen))
	v.RegisterAlias("room_title", fmt.Sprintf("max=%d", domain.MaxRoomTitleLength))
	v.RegisterAlias("room_features", fmt.Sprintf("max=%d", domain.MaxRoomFeatures))
	v.RegisterAlias("room_feature", fmt.Sprintf("required,max=%d", domain.MaxRoomFeatureLength))
}

var std = New()

// Struct валидирует структуру по тегам validate
// Возвращает Errors или nil
func (v *Validator) Struct(s interface{}) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{Field: fe.Field(), Message: message(fe)})
	}
	return out
}

// Struct валидирует структуру стандартным валидатором
func Struct(s interface{}) error {
	return std.Struct(s)
}

// ValidateBookingRequest проверяет заявку на бронирование
// Строки предварительно обрезаются; при успехе возвращается нормализованная заявка.
// Ничего не читает из хранилища: существование номера проверяется отдельно
func ValidateBookingRequest(req domain.BookingRequest) (domain.BookingRequest, error) {
	normalized := NormalizeBookingRequest(req)
	if err := std.Struct(normalized); err != nil {
		return domain.BookingRequest{}, err
	}
	return normalized, nil
}

// NormalizeBookingRequest обрезает пробелы в текстовых полях
func NormalizeBookingRequest(req domain.BookingRequest) domain.BookingRequest {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.TrimSpace(req.GuestEmail)
	req.GuestPhone = strings.TrimSpace(req.GuestPhone)
	req.RoomType = strings.TrimSpace(req.RoomType)
	if req.SpecialRequests != nil {
		trimmed := strings.TrimSpace(*req.SpecialRequests)
		if trimmed == "" {
			req.SpecialRequests = nil
		} else {
			req.SpecialRequests = &trimmed
		}
	}
	return req
}

// message человекочитаемый текст для тега валидатора
func message(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "обязательное поле"
	case "email":
		return "некорректный email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("минимальная длина %s символов", fe.Param())
		}
		return fmt.Sprintf("минимальное значение %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("максимальная длина %s", fe.Param())
		}
		return fmt.Sprintf("максимальное значение %s", fe.Param())
	case "gte":
		return fmt.Sprintf("значение должно быть не меньше %s", fe.Param())
	case "gtfield":
		if fe.StructField() == "CheckOut" {
			return MsgCheckOutNotAfterCheckIn
		}
		return "значение должно быть больше " + toSnake(fe.Param())
	case "url":
		return "некорректный URL"
	case "oneof":
		return "допустимые значения: " + fe.Param()
	default:
		return "некорректное значение"
	}
}

// fieldName имя поля для ошибок: json-тег, иначе snake_case имени поля
func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("json"); tag != "" {
		name := strings.SplitN(tag, ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return toSnake(f.Name)
}

func toSnake(s string) string {
	var b strings.Builder
	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
