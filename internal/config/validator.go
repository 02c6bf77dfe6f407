package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ExpectedEnvSchemaVersion is bumped whenever a .env key is renamed or removed
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists the keys each store driver cannot run without
var RequiredEnvVars = map[string][]string{
	StoreDriverPostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	StoreDriverSQLite:   {"SQLITE_PATH"},
	StoreDriverMemory:   nil,
}

type envFormat func(string) error

func isInt(s string) error {
	_, err := strconv.Atoi(s)
	return err
}

func isFloat(s string) error {
	_, err := strconv.ParseFloat(s, 64)
	return err
}

func isBool(s string) error {
	_, err := strconv.ParseBool(s)
	return err
}

func isDuration(s string) error {
	_, err := time.ParseDuration(s)
	return err
}

// envFormats are checked only when the key is set. Load silently falls back
// to the default on a parse error, so a typo would otherwise go unnoticed.
var envFormats = map[string]envFormat{
	"PORT":                   isInt,
	"DB_MAX_CONNS":           isInt,
	"DB_MAX_CONN_LIFETIME":   isDuration,
	"CLASSIFIER_TIMEOUT":     isDuration,
	"CLASSIFIER_FAIL_CLOSED": isBool,
	"UNSAFE_THRESHOLD":       isFloat,
	"IMAGE_MIN_BYTES":        isInt,
	"IMAGE_MAX_BYTES":        isInt,
	"IMAGE_TARGET_BYTES":     isInt,
	"IMAGE_MIN_DIMENSION":    isInt,
	"IMAGE_MAX_DIMENSION":    isInt,
	"IMAGE_MAX_PIXELS":       isInt,
	"REQUIRE_IMAGE":          isBool,
	"CANVAS_WIDTH":           isInt,
	"CANVAS_HEIGHT":          isInt,
	"SESSION_CAPACITY":       isInt,
	"SESSION_TTL":            isDuration,
	"TREE_CACHE_SIZE":        isInt,
	"TREE_CACHE_TTL":         isDuration,
	"EVENT_MAX_RETRIES":      isInt,
	"EVENT_RETRY_DELAY":      isDuration,
}

// ValidateEnv checks the schema version, the keys the selected store driver
// needs, and the format of every numeric, boolean or duration key that is set.
func ValidateEnv() error {
	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, v)
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", StoreDriverPostgres))
	required, ok := RequiredEnvVars[driver]
	if !ok {
		return fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}

	var problems []string
	for _, key := range required {
		if os.Getenv(key) == "" {
			problems = append(problems, key+" is required for STORE_DRIVER="+driver)
		}
	}
	for _, key := range sortedKeys(envFormats) {
		if v := os.Getenv(key); v != "" {
			if err := envFormats[key](v); err != nil {
				problems = append(problems, fmt.Sprintf("%s=%q is malformed", key, v))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(problems, "; "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and lists settings that work but
// are probably not what the operator wants.
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string
	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}
	if os.Getenv("CLASSIFIER_URL") == "" {
		warnings = append(warnings, "CLASSIFIER_URL is not set - uploaded photos will skip the content-safety check")
	}
	if (os.Getenv("DISCORD_WEBHOOK_ID") == "") != (os.Getenv("DISCORD_WEBHOOK_TOKEN") == "") {
		warnings = append(warnings, "DISCORD_WEBHOOK_ID and DISCORD_WEBHOOK_TOKEN must be set together - announcements disabled")
	}
	if strings.EqualFold(os.Getenv("STORE_DRIVER"), StoreDriverMemory) {
		warnings = append(warnings, "STORE_DRIVER=memory - planted trees are lost on restart")
	}
	return warnings, nil
}

func sortedKeys(m map[string]envFormat) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
