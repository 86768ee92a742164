package dto

import (
	"errors"
	"fmt"
	"html"
	"reflect"
	"strings"

	"money-transfer-api/internal/core/domain"
	"money-transfer-api/pkg/apperror"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterValidators(v)
	}
}

// RegisterValidators installs the money transfer tags on v.
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(fieldName)
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("currency_pair", validateCurrencyPair)
	_ = v.RegisterValidation("cardless_code", validateCardlessCode)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("profit_margin", validateProfitMargin)
}

// fieldName reports json (or form) names in validation errors.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateCurrency(fl validator.FieldLevel) bool {
	return domain.IsSupportedCurrency(fl.Field().String())
}

func validateCurrencyPair(fl validator.FieldLevel) bool {
	from, to, ok := domain.SplitPair(fl.Field().String())
	return ok && from != to && domain.IsSupportedCurrency(from) && domain.IsSupportedCurrency(to)
}

func validateCardlessCode(fl validator.FieldLevel) bool {
	return domain.ValidateCardlessCode(fl.Field().String())
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.IsPositive() && domain.AmountInRange(d)
}

// validateProfitMargin accepts margins above -100%.
func validateProfitMargin(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	return err == nil && d.GreaterThan(decimal.NewFromInt(-1))
}

// BindError maps a binding failure to the closest domain error code.
func BindError(err error) *apperror.AppError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return apperror.Validation("Malformed request: " + err.Error())
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "currency":
		return apperror.ErrUnsupportedCurrency(fmt.Sprint(fe.Value()))
	case "cardless_code":
		return apperror.ErrInvalidCardlessCode()
	case "positive_decimal":
		if fe.Field() == "amount" {
			return apperror.ErrInvalidAmount()
		}
		return apperror.ErrInvalidRate(fe.Field() + " must be greater than zero")
	case "profit_margin":
		return apperror.ErrInvalidRate("profit_margin must be greater than -1")
	case "currency_pair":
		return apperror.ErrInvalidRate(domain.ErrInvalidCurrencyPair.Error())
	}
	return apperror.Validation(fmt.Sprintf("Field %s failed on %s", fe.Field(), fe.Tag()))
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field of a struct pointer, including *string fields and string map values.
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
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			if elem := f.Elem(); elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		case reflect.Map:
			if m, ok := f.Interface().(map[string]string); ok {
				for k, val := range m {
					m[k] = sanitize(val)
				}
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
