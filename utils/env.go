package utils

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type EnvValue interface {
	string | int | bool | time.Duration
}

func parseEnv[V EnvValue](envVar, value string) V {
	var out V

	switch ptr := any(&out).(type) {
	case *string:
		*ptr = value
	case *int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not an integer", envVar, value))
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a boolean", envVar, value))
		}
		*ptr = boolValue
	case *time.Duration:
		durationValue, err := time.ParseDuration(value)
		if err != nil {
			panic(fmt.Sprintf("environment variable %s: '%s' is not a duration", envVar, value))
		}
		*ptr = durationValue
	}
	return out
}

// GetEnv returns the value of the environment variable, or the provided
// default when it is unset or empty.
func GetEnv[V EnvValue](envVar string, defaultValue V) V {
	value, ok := os.LookupEnv(envVar)
	if !ok || value == "" {
		return defaultValue
	}
	return parseEnv[V](envVar, value)
}

// GetRequiredEnv panics when the environment variable is unset or empty.
func GetRequiredEnv[V EnvValue](envVar string) V {
	value, ok := os.LookupEnv(envVar)
	if !ok || value == "" {
		panic(fmt.Sprintf("%s environment variable is required", envVar))
	}
	return parseEnv[V](envVar, value)
}
