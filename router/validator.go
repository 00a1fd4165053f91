package router

import (
	"bytes"
	"encoding/json"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type requestValidator struct{ v *validator.Validate }

// NewValidator returns the echo.Validator used for request bodies. Besides the
// built-in rules it knows "document": a non-null, syntactically valid JSON value.
func NewValidator() echo.Validator {
	v := validator.New()
	_ = v.RegisterValidation("document", func(fl validator.FieldLevel) bool {
		raw, ok := fl.Field().Interface().(json.RawMessage)
		if !ok {
			return false
		}
		raw = bytes.TrimSpace(raw)
		return len(raw) > 0 && !bytes.Equal(raw, []byte("null")) && json.Valid(raw)
	})
	return &requestValidator{v: v}
}

func (r *requestValidator) Validate(i any) error { return r.v.Struct(i) }
