package validators

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/barbershop-api/internal/httperr"
)

const (
	ClockLayout = "15:04"
	DateLayout  = "2006-01-02"
)

var setupOnce sync.Once

// Setup registers json field names and the custom tags on gin's validator.
// Safe to call more than once.
func Setup() {
	setupOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(ClockLayout, fl.Field().String())
			return err == nil
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(DateLayout, fl.Field().String())
			return err == nil
		})
	})
}

func jsonName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form", "uri"} {
		name := strings.Split(f.Tag.Get(tag), ",")[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// NormalizeEmail lowercases and trims an address before it is compared or stored.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Translate turns a gin binding error into a validation BusinessError with
// one message per offending field.
func Translate(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[fieldPath(fe)] = messageFor(fe)
		}
		return httperr.ErrInvalidFields(details)
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		field := typeErr.Field
		if field == "" {
			field = "_body"
		}
		return httperr.ErrInvalidFields(map[string]string{
			field: fmt.Sprintf("must be of type %s", typeErr.Type.String()),
		})
	}

	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		return httperr.ErrInvalidFields(map[string]string{
			"_query": fmt.Sprintf("%q is not a valid number", numErr.Num),
		})
	}

	return httperr.ErrInvalidFields(map[string]string{"_body": "malformed request"})
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items/characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at most %s items/characters", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "hhmm":
		return "must be a time of day formatted HH:MM"
	case "isodate":
		return "must be a date formatted YYYY-MM-DD"
	}
	return "is invalid"
}
