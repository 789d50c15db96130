package logger

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

// envVarOrBool gets the environment variable from the provided key,
// parses it into a bool, or returns the provided default
// when the variable is unset or unparseable.
func envVarOrBool(key string, def bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return def
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		return def
	}

	return b
}
