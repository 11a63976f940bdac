package config

import (
	"os"
	"strconv"
	"strings"
)

// Recognized option keys. Admin credentials and the relay URL carry
// insecure fallbacks when unset; startup logs a warning for each one.
const (
	KeyAdminUser    = "ADMIN_USER"
	KeyAdminPass    = "ADMIN_PASS"
	KeyOperatorName = "OPERATOR_NAME"
	KeyFormRelayURL = "FORM_RELAY_URL"
	KeyLocalStore   = "LOCAL_STORE_PATH"
	KeySiteBaseURL  = "SITE_BASE_URL"
)

const (
	DefaultAdminUser    = "admin"
	DefaultAdminPass    = "pass"
	DefaultFormRelayURL = "https://formsubmit.co/ajax/contact"
	DefaultLocalStore   = "data/site.db"
)

func New() map[string]string {
	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(config map[string]string, key string, defaultValue string) string {
	if config == nil {
		return defaultValue
	}

	if val, ok := config[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(config map[string]string, key string, defaultValue int) int {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}

func GetBool(config map[string]string, key string, defaultValue bool) bool {
	if config == nil {
		return defaultValue
	}

	s, ok := config[key]
	if !ok {
		return defaultValue
	}

	asBool, err := strconv.ParseBool(s)
	if err != nil {
		return defaultValue
	}

	return asBool
}

// AdminCredentials returns the configured admin username and password
// with the documented insecure fallbacks when unset.
func AdminCredentials(config map[string]string) (username, password string) {
	return GetString(config, KeyAdminUser, DefaultAdminUser),
		GetString(config, KeyAdminPass, DefaultAdminPass)
}

// OperatorName is the identity stamped as author on newly created
// posts. Defaults to the admin username.
func OperatorName(config map[string]string) string {
	return GetString(config, KeyOperatorName, GetString(config, KeyAdminUser, DefaultAdminUser))
}
