package security

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of security event
type EventType string

const (
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventRateLimitStoreDown EventType = "rate_limit_store_error"
	EventValidationFailed   EventType = "validation_failed"
	EventNotificationFailed EventType = "notification_failed"
	EventSubmissionAccepted EventType = "submission_accepted"
	EventMalformedRequest   EventType = "malformed_request"
)

// SecurityEvent represents a security-related event to be logged
type SecurityEvent struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	Form         string                 `json:"form,omitempty"`
	SubjectType  string                 `json:"subject_type,omitempty"`  // "email", "ip"
	SubjectValue string                 `json:"subject_value,omitempty"` // Masked or hashed for PII
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// SecurityLogger provides structured logging for security events
type SecurityLogger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
}

var defaultLogger *SecurityLogger

// InitSecurityLogger initializes the security logger with Zap
func InitSecurityLogger(serviceName, environment string) *SecurityLogger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"

	// stdout for container environments
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	sl := NewSecurityLogger(logger, serviceName, environment)
	defaultLogger = sl
	return sl
}

// NewSecurityLogger wraps an existing zap logger
func NewSecurityLogger(logger *zap.Logger, serviceName, environment string) *SecurityLogger {
	return &SecurityLogger{
		zapLogger:   logger,
		serviceName: serviceName,
		environment: environment,
	}
}

// DefaultLogger returns the default security logger instance
func DefaultLogger() *SecurityLogger {
	if defaultLogger == nil {
		return InitSecurityLogger("impulse-vlsi-backend", "development")
	}
	return defaultLogger
}

// Log logs a security event
func (sl *SecurityLogger) Log(_ context.Context, event SecurityEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = sl.serviceName
	event.Environment = sl.environment

	severity := GetSeverity(event.Event)
	level := severity.zapLevel()
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
		zap.String("severity", string(severity)),
	}
	if event.Form != "" {
		fields = append(fields, zap.String("form", event.Form))
	}
	if event.SubjectType != "" {
		fields = append(fields, zap.String("subject_type", event.SubjectType))
	}
	if event.SubjectValue != "" {
		fields = append(fields, zap.String("subject_value", event.SubjectValue))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	sl.zapLogger.Log(level, string(event.Event), fields...)
}

// LogRateLimitTriggered logs when an identity exceeds a form's threshold
func (sl *SecurityLogger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string, count, limit int) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventRateLimitTriggered,
		SubjectType:  "ip",
		SubjectValue: ip,
		IP:           ip,
		UserAgent:    userAgent,
		RequestID:    requestID,
		Details: map[string]interface{}{
			"endpoint": endpoint,
			"count":    count,
			"limit":    limit,
		},
	})
}

// LogRateLimitStoreError logs a store failure; the request is let through
func (sl *SecurityLogger) LogRateLimitStoreError(ctx context.Context, ip, requestID, endpoint string, err error) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventRateLimitStoreDown,
		IP:        ip,
		RequestID: requestID,
		Details: map[string]interface{}{
			"endpoint": endpoint,
			"error":    err.Error(),
		},
	})
}

// LogValidationFailed logs which fields failed, never their values
func (sl *SecurityLogger) LogValidationFailed(ctx context.Context, form, ip, requestID string, failures int) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventValidationFailed,
		Form:      form,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"failures": failures},
	})
}

// LogNotificationFailed logs a notifier error for a submission
func (sl *SecurityLogger) LogNotificationFailed(ctx context.Context, form, submitterEmail, requestID string, err error) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventNotificationFailed,
		Form:         form,
		SubjectType:  "email",
		SubjectValue: MaskEmail(submitterEmail),
		RequestID:    requestID,
		Details:      map[string]interface{}{"error": err.Error()},
	})
}

// LogSubmissionAccepted logs a fully notified submission
func (sl *SecurityLogger) LogSubmissionAccepted(ctx context.Context, form, submitterEmail, requestID string) {
	sl.Log(ctx, SecurityEvent{
		Event:        EventSubmissionAccepted,
		Form:         form,
		SubjectType:  "email",
		SubjectValue: MaskEmail(submitterEmail),
		RequestID:    requestID,
	})
}

// LogMalformedRequest logs a body that could not be decoded
func (sl *SecurityLogger) LogMalformedRequest(ctx context.Context, form, ip, requestID string, err error) {
	sl.Log(ctx, SecurityEvent{
		Event:     EventMalformedRequest,
		Form:      form,
		IP:        ip,
		RequestID: requestID,
		Details:   map[string]interface{}{"error": err.Error()},
	})
}

// Sync flushes any buffered log entries
func (sl *SecurityLogger) Sync() error {
	return sl.zapLogger.Sync()
}

// --- Helper Functions ---

// MaskEmail masks an email for logging (e.g., "j***@example.com")
func MaskEmail(email string) string {
	atIndex := strings.IndexByte(email, '@')
	if len(email) < 3 || atIndex < 0 {
		return "***"
	}
	if atIndex <= 1 {
		return "***" + email[atIndex:]
	}
	return email[:1] + "***" + email[atIndex:]
}

// HashValue creates a short SHA256 hash of a value (for logging without PII)
func HashValue(value string) string {
	hash := sha256.Sum256([]byte(value))
	return hex.EncodeToString(hash[:8])
}
