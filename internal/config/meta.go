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

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			switch fieldName {
			case "notify_sound":
				return true
			default:
				return false
			}
		case reflect.Int:
			switch fieldName {
			case "credential_timeout_seconds":
				return DefaultCredentialTimeoutSeconds
			case "fetch_timeout_seconds":
				return DefaultFetchTimeoutSeconds
			case "ledger_timeout_seconds":
				return DefaultLedgerTimeoutSeconds
			case "max_auth_attempts":
				return DefaultMaxAuthAttempts
			case "max_log_files":
				return 200
			case "push_timeout_seconds":
				return DefaultPushTimeoutSeconds
			default:
				return 10
			}
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "account_username":
			return "corrector01"
		case "author_email":
			return "corrector01@example.org"
		case "author_name":
			return "Corrector One"
		case "credential_endpoint":
			return "https://sets.example.org/github_token"
		case "ledger_endpoint":
			return "https://sets.example.org/commits"
		case "merge_message":
			return DefaultMergeMessage
		case "remote_name":
			return "origin"
		case "remote_url":
			return "https://github.com/example/book-set.git"
		case "role":
			return "Corrector"
		case "ssh_known_hosts":
			return "~/.ssh/known_hosts"
		default:
			return "example"
		}
	}

	return nil
}
