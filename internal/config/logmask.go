// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// sensitiveKeywords contains keywords that indicate sensitive fields.
// Any field name containing these keywords (case-insensitive) will be masked.
var sensitiveKeywords = []string{
	"password",
	"passwd",
	"passphrase",
	"psk",
	"secret",
	"token",
	"credential",
}

// MaskSecrets recursively masks sensitive fields in the given data structure.
// It replaces values with "***" for keys or fields matching sensitive keywords.
// Supports: strings, maps, slices, structs, pointers
func MaskSecrets(data any) any {
	if data == nil {
		return nil
	}

	val := reflect.ValueOf(data)

	for val.Kind() == reflect.Ptr {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}

	switch val.Kind() {
	case reflect.Map:
		result := make(map[string]any)
		iter := val.MapRange()
		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())
			value := iter.Value().Interface()

			if isSensitiveKey(key) {
				result[key] = "***"
			} else {
				result[key] = MaskSecrets(value)
			}
		}
		return result

	case reflect.Slice, reflect.Array:
		length := val.Len()
		result := make([]any, length)
		for i := 0; i < length; i++ {
			result[i] = MaskSecrets(val.Index(i).Interface())
		}
		return result

	case reflect.Struct:
		result := make(map[string]any)
		typ := val.Type()
		for i := 0; i < val.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}

			if isSensitiveKey(field.Name) {
				result[field.Name] = "***"
			} else {
				result[field.Name] = MaskSecrets(val.Field(i).Interface())
			}
		}
		return result

	default:
		return val.Interface()
	}
}

// isSensitiveKey checks if a key name contains any sensitive keyword.
func isSensitiveKey(key string) bool {
	lowerKey := strings.ToLower(key)
	for _, keyword := range sensitiveKeywords {
		if strings.Contains(lowerKey, keyword) {
			return true
		}
	}
	return false
}

// Redacted returns the YAML view of d (wifi/server/device sections) with secrets masked.
// With reveal set, the password is kept.
func Redacted(d Device, reveal bool) (map[string]any, error) {
	data, err := yaml.Marshal(toFileConfig(d))
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if reveal {
		return tree, nil
	}
	return maskTree(tree)
}

// maskTree masks v and requires the result to still be a mapping.
func maskTree(v any) (map[string]any, error) {
	result := MaskSecrets(v)
	masked, ok := result.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected masked type %T", result)
	}
	return masked, nil
}
