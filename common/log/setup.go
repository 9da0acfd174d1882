package log

import (
	"fmt"
	"io"
	"log/slog"
)

// Setup installs the default logger. Unknown levels fall back to INFO,
// unknown formats to text.
func Setup(w io.Writer, lvl, format string) *slog.Logger {
	logLevel := slog.LevelInfo.Level()
	if len(lvl) > 0 {
		// logLevel not change if unmarshall failed
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			fmt.Fprintln(w, "input invalid log level, use default log level INFO")
		}
	}
	opt := &slog.HandlerOptions{AddSource: false, Level: logLevel}
	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(w, opt)
	default:
		handler = slog.NewTextHandler(w, opt)
	}
	logger := slog.New(&ContextHandler{Handler: handler})
	slog.SetDefault(logger)
	return logger
}
