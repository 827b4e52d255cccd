package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateConfig checks that the loaded configuration is usable before any
// connection is attempted.
func ValidateConfig(cfg *Config) error {
	var problems []string

	if err := validatePort("SERVER_PORT", cfg.ServerPort); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validatePort("DB_PORT", cfg.DBPort); err != nil {
		problems = append(problems, err.Error())
	}
	if err := validatePort("REDIS_PORT", cfg.RedisPort); err != nil {
		problems = append(problems, err.Error())
	}

	if cfg.DBHost == "" {
		problems = append(problems, "DB_HOST must not be empty")
	}
	if cfg.DBUser == "" {
		problems = append(problems, "DB_USER must not be empty")
	}
	if cfg.DBName == "" {
		problems = append(problems, "DB_NAME must not be empty")
	}

	switch cfg.DBSSLMode {
	case "disable", "require", "verify-ca", "verify-full", "prefer", "allow":
	default:
		problems = append(problems, fmt.Sprintf("DB_SSL_MODE %q is not a valid sslmode", cfg.DBSSLMode))
	}

	if cfg.ModelAPIURL == "" {
		problems = append(problems, "MODEL_API_URL must not be empty")
	}

	if IsProduction() && cfg.ModelAPIKey == "" {
		problems = append(problems, "MODEL_API_KEY is required in production")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func validatePort(name, value string) error {
	port, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s %q is not a number", name, value)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s %d is out of range", name, port)
	}
	return nil
}
