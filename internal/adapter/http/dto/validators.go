package dto

import (
	"reflect"
	"regexp"
	"strings"

	"lnpos-gateway/internal/codec"
	"lnpos-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	safeStringRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)
	currencyRe   = regexp.MustCompile(`^[A-Za-z]{3}$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("safe_id", validateSafeID)
		_ = v.RegisterValidation("currency", validateCurrency)
		_ = v.RegisterValidation("scheme", validateScheme)
		_ = v.RegisterValidation("device", validateDevice)
	}
}

// validateSafeID allows alphanumeric, underscore, dash, and dot.
func validateSafeID(fl validator.FieldLevel) bool {
	return safeStringRe.MatchString(fl.Field().String())
}

// validateCurrency accepts a 3-letter fiat code or "sat".
func validateCurrency(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.EqualFold(s, domain.NativeCurrency) || currencyRe.MatchString(s)
}

func validateScheme(fl validator.FieldLevel) bool {
	_, err := codec.ParseScheme(fl.Field().String())
	return err == nil
}

func validateDevice(fl validator.FieldLevel) bool {
	switch domain.Device(fl.Field().String()) {
	case domain.DevicePOS, domain.DeviceATM:
		return true
	}
	return false
}

// SanitizeStruct trims whitespace on every exported string field (including
// *string) of a struct pointer. Values are not HTML-escaped: titles end up
// in LNURL metadata, whose hash must match what the wallet sees, and the
// PIN page escapes on output.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(strings.TrimSpace(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(strings.TrimSpace(elem.String()))
			}
		}
	}
}
