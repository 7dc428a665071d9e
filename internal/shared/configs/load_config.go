package configs

import (
	"fmt"
	"strings"

	"usage-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

// LoadConfig reads the YAML config file and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validators.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", describeViolations(err))
	}

	return &cfg, nil
}

// describeViolations flattens validator errors into one readable line.
func describeViolations(err error) string {
	ve, ok := err.(validators.ValidationErrors)
	if !ok {
		return err.Error()
	}

	violations := make([]string, 0, len(ve))
	for _, e := range ve {
		violations = append(violations, describeViolation(e))
	}

	return strings.Join(violations, ", ")
}

func describeViolation(e validators.FieldError) string {
	field := fieldPath(e)

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "required_if":
		return fmt.Sprintf("%s (required_if=%s)", field, e.Param())
	case "min":
		return fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		return fmt.Sprintf("%s (max=%s)", field, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, e.Tag())
	}
}

// fieldPath renders the violating field the way the YAML spells it,
// e.g. "Config.Parser.Workers" becomes "parser.workers".
func fieldPath(e validators.FieldError) string {
	parts := strings.Split(e.StructNamespace(), ".")
	if len(parts) < 2 {
		return e.Field()
	}

	return strings.ToLower(strings.Join(parts[1:], "."))
}
