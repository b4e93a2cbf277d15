package dto

import (
	"fmt"
	"html"
	"net/url"
	"reflect"
	"regexp"
	"strings"

	"payment-rails/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var accountRe = regexp.MustCompile(`^[a-zA-Z0-9_\-\.]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("account_id", validateAccountID)
		_ = v.RegisterValidation("safe_url", validateSafeURL)
	}
}

// validateAccountID allows alphanumeric, underscore, dash, and dot.
func validateAccountID(fl validator.FieldLevel) bool {
	return accountRe.MatchString(fl.Field().String())
}

// validateSafeURL accepts only http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return true // optional field; use "required" tag to enforce presence
	}
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ParseAsset converts the wire asset string to its domain value.
func ParseAsset(s string) (domain.Asset, error) {
	asset := domain.Asset(strings.ToUpper(strings.TrimSpace(s)))
	if !asset.IsRecognized() {
		return "", fmt.Errorf("unrecognized asset %q", s)
	}
	return asset, nil
}

// ParseCategory converts the wire category string to its domain value.
func ParseCategory(s string) (domain.MerchantCategory, error) {
	category := domain.MerchantCategory(strings.ToUpper(strings.TrimSpace(s)))
	if !category.IsValid() {
		return "", fmt.Errorf("unrecognized category %q", s)
	}
	return category, nil
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
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
		case reflect.Struct:
			sanitizeFields(f)
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
