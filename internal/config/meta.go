package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue returns the default for known fields so the example
// doubles as documentation of the built-in values
func generateExampleValue(t reflect.Type, fieldName string) any {
	defaults := DefaultStoreOptions()

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "archive_workers":
				return defaults.ArchiveWorkers
			case "expiration_threshold":
				return defaults.ExpirationThreshold
			case "kill_grace_period_ms":
				return defaults.KillGracePeriod.Milliseconds()
			case "lock_poll_interval_ms":
				return defaults.LockPollInterval.Milliseconds()
			case "lock_timeout_ms":
				return defaults.LockTimeout.Milliseconds()
			case "max_log_files":
				return 1000
			case "reference_ttl":
				return defaults.ReferenceTTL
			case "tool_response_limit":
				return defaults.ToolResponseLimit
			}
			return 0
		}
	}

	if t.Kind() == reflect.String {
		if fieldName == "project_root" {
			return "~/src/my-project"
		}
		return "example"
	}

	return nil
}
