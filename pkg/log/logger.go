package log

import (
	"context"
	"io"
	"strings"

	"github.com/rs/zerolog"

	lrerrors "github.com/YuminosukeSato/linreg/pkg/errors"
)

// ParseLevel converts a level name ("debug", "info", "warn", "error") to a Level.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, lrerrors.NewValidationError("log_level", "must be one of debug, info, warn, error", level)
	}
}

// Setup installs a zerolog provider writing to w as the global provider and
// routes warnings raised through pkg/errors.Warn into it.
func Setup(level string, w io.Writer) (*ZerologProvider, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	p := NewZerologProvider(w, lvl)
	SetProvider(p)

	root := p.Root()
	lrerrors.SetZerologWarnFunc(func(warning error) {
		if !root.Enabled(context.Background(), LevelWarn) {
			return
		}
		event := root.Zerolog().Warn().Str(ComponentKey, "warnings")
		var m zerolog.LogObjectMarshaler
		if lrerrors.As(warning, &m) {
			event = event.EmbedObject(m)
		}
		event.Msg(warning.Error())
	})

	return p, nil
}
