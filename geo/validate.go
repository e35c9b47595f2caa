package geo

import (
	"fmt"
	"math"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// validatorInstance returns the package validator with the geo tags registered.
// A *validator.Validate caches struct metadata and is safe for concurrent use.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New()
		// Registration only fails on an empty tag or nil func.
		_ = v.RegisterValidation("geoid", func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.String && validID(fl.Field().String())
		})
		_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
			f := fl.Field().Float()
			return !math.IsNaN(f) && !math.IsInf(f, 0)
		})
		validate = v
	})
	return validate
}

// Validate returns nil for a valid point, or an error wrapping ErrInvalidPoint
// that names the offending fields.
func (p Point) Validate() error {
	if err := validatorInstance().Struct(p); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidPoint, p.ID, describe(err))
	}
	return nil
}

// Valid reports whether the point has a valid id and in-range coordinates.
func (p Point) Valid() bool { return p.Validate() == nil }

// Validate returns nil for a valid route, or an error wrapping ErrInvalidRoute
// that names the offending fields.
func (r Route) Validate() error {
	if err := validatorInstance().Struct(r); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidRoute, r.ID, describe(err))
	}
	return nil
}

// Valid reports whether the route has valid ids, distinct endpoints and a positive length.
func (r Route) Valid() bool { return r.Validate() == nil }

// describe flattens validator field errors into "Field(tag)" items.
func describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	out := ""
	for i, fe := range verrs {
		if i > 0 {
			out += ", "
		}
		out += fe.Field() + "(" + fe.Tag() + ")"
	}
	return out
}
