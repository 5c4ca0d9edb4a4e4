package config

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// Validate checks the configuration against the struct validation tags.
func Validate(cfg *Config) error {
	return validate.Struct(cfg)
}
