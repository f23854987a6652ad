package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ExpectedEnvSchemaVersion is the .env layout this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars must always be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// DatabaseEnvVars are additionally required when PERSISTENCE=postgres
var DatabaseEnvVars = []string{
	"DB_USER",
	"DB_PASSWORD",
	"DB_HOST",
	"DB_PORT",
	"DB_NAME",
}

// exampleValues are the placeholders shipped in .env.example
var exampleValues = []struct {
	key, value, hint string
}{
	{"DB_PASSWORD", "change_this_secure_password", "please use a secure password"},
	{"API_KEY", "generate_with_openssl_rand_hex_32", "generate a secure key with: openssl rand -hex 32"},
}

// ValidateEnv checks the schema version and that every required variable is set
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	required := RequiredEnvVars
	if strings.EqualFold(os.Getenv("PERSISTENCE"), PersistencePostgres) {
		required = append(append([]string{}, RequiredEnvVars...), DatabaseEnvVars...)
	}

	var missing []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports settings that
// are legal but probably unintended.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	for _, ex := range exampleValues {
		if os.Getenv(ex.key) == ex.value {
			warnings = append(warnings, fmt.Sprintf("%s appears to be using the example value - %s", ex.key, ex.hint))
		}
	}

	if raw := os.Getenv("SHOP_DISPLAY_MARKUP"); raw != "" {
		if m, err := strconv.ParseFloat(raw, 64); err == nil && m < 1 {
			warnings = append(warnings, fmt.Sprintf("SHOP_DISPLAY_MARKUP is %s - display items will sell below their value", raw))
		}
	}

	return warnings, nil
}
