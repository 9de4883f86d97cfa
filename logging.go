package quadgl

import (
	"log/slog"
	"os"
)

// glLogLevel controls the log level for quadgl debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var glLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for quadgl operations.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		glLogLevel.Set(slog.LevelDebug)
	} else {
		glLogLevel.Set(slog.LevelInfo)
	}
}

// glLogger is the logger for shader, program, and buffer operations.
var glLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: glLogLevel}))
