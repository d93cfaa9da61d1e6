package theme

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	hexPattern    = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)
	rgbPattern    = regexp.MustCompile(`^rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)$`)
	rgbaPattern   = regexp.MustCompile(`^rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*[\d.]+\s*\)$`)
	hslPattern    = regexp.MustCompile(`^hsl\(\s*\d+\s*,\s*\d+%\s*,\s*\d+%\s*\)$`)
	semverPattern = regexp.MustCompile(`^\d+\.\d+\.\d+(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

// IsValidColor reports whether s is a hex, rgb(), rgba() or hsl() colour.
func IsValidColor(s string) bool {
	return hexPattern.MatchString(s) ||
		rgbPattern.MatchString(s) ||
		rgbaPattern.MatchString(s) ||
		hslPattern.MatchString(s)
}

// Validator returns the shared validator with the theme tags registered:
// csscolor, designstyle and brandversion. brandversion accepts
// MAJOR.MINOR.PATCH with optional pre-release and build suffixes.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		tags := map[string]validator.Func{
			"csscolor": func(fl validator.FieldLevel) bool {
				return IsValidColor(fl.Field().String())
			},
			"designstyle": func(fl validator.FieldLevel) bool {
				_, err := ParseDesignStyle(fl.Field().String())
				return err == nil
			},
			"brandversion": func(fl validator.FieldLevel) bool {
				return semverPattern.MatchString(fl.Field().String())
			},
		}
		for tag, fn := range tags {
			if err := v.RegisterValidation(tag, fn); err != nil {
				panic(fmt.Sprintf("theme: register validation %q: %v", tag, err))
			}
		}

		validateInst = v
	})

	return validateInst
}

// ValidationError reports the first invalid field of a brand.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidateBrand checks a brand's fields and colours.
func ValidateBrand(b *BrandConfig) error {
	if b == nil {
		return &ValidationError{Field: "brand", Message: "brand is nil"}
	}
	if err := Validator().Struct(b); err != nil {
		return AsValidationError(err)
	}
	return nil
}

// AsValidationError converts a validator error into a *ValidationError
// naming the first failing field.
func AsValidationError(err error) error {
	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("failed validation for tag '%s' (value %v)", fe.Tag(), fe.Value()),
			Err:     err,
		}
	}
	return &ValidationError{Field: "brand", Message: err.Error(), Err: err}
}

// fieldPath turns "BrandConfig.Tokens.Palette.Primary.Main" into
// "tokens.palette.primary.main".
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToLower(p[:1]) + p[1:]
	}
	return strings.Join(parts, ".")
}
