package logger

import (
	"fmt"
	"log/slog"
	"strings"
)

// Config controls the process-wide slog handler
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool

	// MaxValueLen caps string attribute length; zero disables the cap
	MaxValueLen int
}

// NewConfig builds a config from the application settings
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
		MaxValueLen: DefaultMaxValueLen,
	}
}

// DefaultConfig is the fallback used before the app config is loaded
func DefaultConfig() Config {
	return NewConfig(LevelInfo, FormatText, DefaultServiceName, DefaultVersion, DefaultEnvironment, false)
}

// LogLevel maps the configured level, defaulting to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn, LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether records are written as JSON lines
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, FormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}

func (c Config) handlerOptions() *slog.HandlerOptions {
	return &slog.HandlerOptions{
		Level:       c.LogLevel(),
		AddSource:   c.AddSource,
		ReplaceAttr: c.scrub,
	}
}

// scrub keeps photo payloads out of the log. Data URLs and byte slices are
// replaced by their size; other strings are cut at MaxValueLen.
func (c Config) scrub(_ []string, a slog.Attr) slog.Attr {
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		if strings.HasPrefix(s, dataURLPrefix) {
			mime, _, _ := strings.Cut(strings.TrimPrefix(s, dataURLPrefix), ";")
			return slog.String(a.Key, fmt.Sprintf(redactedImageFmt, mime, len(s)))
		}
		if c.MaxValueLen > 0 && len(s) > c.MaxValueLen {
			return slog.String(a.Key, s[:c.MaxValueLen]+truncatedSuffix)
		}
	case slog.KindAny:
		if b, ok := v.Any().([]byte); ok {
			return slog.String(a.Key, fmt.Sprintf(redactedBytesFmt, len(b)))
		}
	}
	return a
}
