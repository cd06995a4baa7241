package logger

import (
	"strings"

	"go.uber.org/zap"
)

// Field keys shared by every AI-related log entry.
const (
	FieldProvider = "ai_provider"
	FieldModel    = "ai_model"
)

// StringField is one candidate key/value pair for StringFields.
type StringField struct {
	Key   string
	Value string
}

// StringFields builds zap fields from the pairs, skipping any whose key or
// value trims to empty.
func StringFields(fields ...StringField) []zap.Field {
	result := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		key := strings.TrimSpace(field.Key)
		if key == "" {
			continue
		}

		value := strings.TrimSpace(field.Value)
		if value == "" {
			continue
		}

		result = append(result, zap.String(key, value))
	}

	return result
}

// WithFields attaches the fields to the logger, substituting a no-op logger
// for nil.
func WithFields(logger *zap.Logger, fields ...zap.Field) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}

	if len(fields) == 0 {
		return logger
	}

	return logger.With(fields...)
}

// CommonFields returns the provider/model fields, dropping whichever is empty.
func CommonFields(provider, model string) []zap.Field {
	return StringFields(
		StringField{Key: FieldProvider, Value: provider},
		StringField{Key: FieldModel, Value: model},
	)
}
