package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger wraps slog.Logger with additional functionality
type Logger struct {
	*slog.Logger
}

// New creates a new logger instance
func New() *Logger {
	// Get log level from environment
	level := getLogLevel(os.Getenv("LOG_LEVEL"))

	// Create handler options
	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
	}

	// Create handler based on environment
	var handler slog.Handler
	if gin.Mode() == gin.DebugMode {
		// Use text handler for development (more readable)
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		// Use JSON handler for production (structured)
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}

	return &Logger{
		Logger: slog.New(handler),
	}
}

// getLogLevel converts string to slog.Level
func getLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithError adds error to logger context
func (l *Logger) WithError(err error) *Logger {
	return &Logger{
		Logger: l.Logger.With(slog.String("error", err.Error())),
	}
}

// WithFields adds multiple fields to logger context
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, slog.Any(k, v))
	}
	return &Logger{
		Logger: l.Logger.With(args...),
	}
}

// HTTP logging methods

// LogHTTPRequest logs an HTTP request
func (l *Logger) LogHTTPRequest(c *gin.Context, duration time.Duration) {
	l.Logger.InfoContext(c.Request.Context(),
		"HTTP Request",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.String("query", c.Request.URL.RawQuery),
		slog.Int("status", c.Writer.Status()),
		slog.Duration("duration", duration),
		slog.String("ip", c.ClientIP()),
		slog.String("user_agent", c.Request.UserAgent()),
		slog.Int("size", c.Writer.Size()),
	)
}

// LogHTTPError logs an HTTP error
func (l *Logger) LogHTTPError(c *gin.Context, err error, statusCode int) {
	l.Logger.ErrorContext(c.Request.Context(),
		"HTTP Error",
		slog.String("method", c.Request.Method),
		slog.String("path", c.Request.URL.Path),
		slog.Int("status", statusCode),
		slog.String("error", err.Error()),
		slog.String("ip", c.ClientIP()),
	)
}

// Business logic logging methods

// LogSessionCreated logs when a builder session is started
func (l *Logger) LogSessionCreated(ctx context.Context, sessionID, packageID string) {
	l.Logger.InfoContext(ctx,
		"Builder Session Created",
		slog.String("session_id", sessionID),
		slog.String("package_id", packageID),
	)
}

// LogBookingSubmitted logs when a booking payload is handed off
func (l *Logger) LogBookingSubmitted(ctx context.Context, bookingRef, packageID, totalBudget string) {
	l.Logger.InfoContext(ctx,
		"Booking Submitted",
		slog.String("booking_ref", bookingRef),
		slog.String("package_id", packageID),
		slog.String("total_budget", totalBudget),
	)
}

// LogCatalogRecordRejected logs a catalog record dropped from a listing
// because its shape failed ingestion validation
func (l *Logger) LogCatalogRecordRejected(ctx context.Context, kind, id string, err error) {
	l.Logger.WarnContext(ctx,
		"Catalog Record Rejected",
		slog.String("kind", kind),
		slog.String("id", id),
		slog.Any("error", err),
	)
}

// LogDegenerateProration logs the zero-item-sum proration passthrough so
// the case stays visible for later tuning
func (l *Logger) LogDegenerateProration(ctx context.Context, sessionID, packageID string) {
	l.Logger.WarnContext(ctx,
		"Degenerate Proration",
		slog.String("session_id", sessionID),
		slog.String("package_id", packageID),
		slog.String("policy", "passthrough"),
	)
}

// Global logger instance (can be replaced with dependency injection)
var defaultLogger = New()

// GetDefault returns the default logger instance
func GetDefault() *Logger {
	return defaultLogger
}

// SetDefault sets the default logger instance
func SetDefault(logger *Logger) {
	defaultLogger = logger
}
