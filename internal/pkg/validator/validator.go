package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate *validator.Validate

	// looseEmailRe - "что-то@что-то.что-то" без пробелов, как на форме входа
	looseEmailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	// phMobileRe - 09XXXXXXXXX или +639XXXXXXXXX
	phMobileRe = regexp.MustCompile(`^(\+639|09)\d{9}$`)
)

func init() {
	validate = validator.New()

	// В ошибках поля называются так же, как в JSON запроса
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	_ = validate.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
		return looseEmailRe.MatchString(fl.Field().String())
	})
	_ = validate.RegisterValidation("ph_mobile", func(fl validator.FieldLevel) bool {
		return phMobileRe.MatchString(fl.Field().String())
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// Var - валидация одного значения по тегу
func Var(v interface{}, tag string) error {
	return validate.Var(v, tag)
}

// FailedFields - имена полей, не прошедших проверку; nil для прочих ошибок
func FailedFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fields
}
