package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var (
	ErrDuplicateCode = errors.New("duplicate course code")
	ErrInvalidCourse = errors.New("invalid course record")
)

var courseValidate = validator.New()

// Course is a single offering in the catalog
type Course struct {
	Code    string `json:"code" yaml:"code" parquet:"code" validate:"required"`
	Title   string `json:"title" yaml:"title" parquet:"title" validate:"required"`
	Credits int    `json:"credits" yaml:"credits" parquet:"credits" validate:"gt=0"`
	Domain  string `json:"domain" yaml:"domain" parquet:"domain" validate:"required"`
}

// Validate checks the record-level invariants (non-empty fields, positive credits).
func (c Course) Validate() error {
	if err := courseValidate.Struct(c); err != nil {
		return fmt.Errorf("%w %q: %v", ErrInvalidCourse, c.Code, err)
	}
	return nil
}
