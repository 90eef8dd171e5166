package selection

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultMinCredits = 16
	DefaultMaxCredits = 27
	DefaultKeyPrefix  = "course_reg_draft_v1"

	submittedSuffix = "_submitted"
)

var configValidate = validator.New()

// Config controls the accepted credit range and the storage keys.
type Config struct {
	MinCredits int    `validate:"gte=0"`
	MaxCredits int    `validate:"gtefield=MinCredits"`
	KeyPrefix  string `validate:"required"`
}

// DefaultConfig returns the 16-27 credit range with the standard key prefix.
func DefaultConfig() Config {
	return Config{
		MinCredits: DefaultMinCredits,
		MaxCredits: DefaultMaxCredits,
		KeyPrefix:  DefaultKeyPrefix,
	}
}

func (c Config) Validate() error {
	if err := configValidate.Struct(c); err != nil {
		return fmt.Errorf("invalid selection config: %w", err)
	}
	return nil
}

// DraftKey is the storage key holding the draft blob.
func (c Config) DraftKey() string {
	return c.KeyPrefix
}

// SubmittedKey is the storage key holding the latest submission snapshot.
func (c Config) SubmittedKey() string {
	return c.KeyPrefix + submittedSuffix
}

// Range returns the configured inclusive credit window.
func (c Config) Range() CreditRange {
	return CreditRange{Min: c.MinCredits, Max: c.MaxCredits}
}
