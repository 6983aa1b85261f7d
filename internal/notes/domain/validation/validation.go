// Package validation проверяет сущности по их тегам validate и
// формирует сообщение о первой найденной ошибке.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Error первая ошибка проверки сущности.
type Error struct {
	Field   string
	Rule    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Validator проверяет сущности.
type Validator struct {
	validate *validator.Validate
}

var (
	instance *Validator
	once     sync.Once
)

// Default возвращает общий экземпляр Validator.
func Default() *Validator {
	once.Do(func() {
		instance = New()
	})
	return instance
}

// New создает Validator с именами полей из json-тегов и правилом nowhitespace.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Ошибка регистрации возможна только при пустом имени тега.
	_ = v.RegisterValidation("nowhitespace", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), unicode.IsSpace)
	})

	return &Validator{validate: v}
}

// Struct проверяет s. Поля проверяются в порядке объявления,
// возвращается *Error для первого невалидного поля.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate: %w", err)
	}

	fe := fieldErrs[0]
	return &Error{
		Field:   fe.Field(),
		Rule:    fe.Tag(),
		Message: message(fe),
	}
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "max":
		return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "nowhitespace":
		return fmt.Sprintf("%q with value %q must not contain whitespace", field, fmt.Sprint(fe.Value()))
	default:
		return fmt.Sprintf("%q failed on the %q rule", field, fe.Tag())
	}
}
