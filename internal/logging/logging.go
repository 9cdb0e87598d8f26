package logging

import (
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

var (
	Logger  = zerolog.Nop()
	logFile *os.File
)

// timestampHook adds the timestamp at the end of each log event
type timestampHook struct{}

func (h timestampHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	e.Time("ts", time.Now())
}

// Init initializes the logging system with zerolog. The log goes to a
// file: stdout is reserved for the emitted focus command and the tool
// usually runs from a keybinding where stderr is invisible. Every
// invocation is stamped with a short run id so interleaved keypresses
// can be told apart in the shared file.
func Init(debug bool) error {
	logDir := filepath.Join(os.Getenv("HOME"), ".local", "state", "overfocus")
	os.MkdirAll(logDir, 0755)

	logPath := filepath.Join(logDir, "overfocus.log")
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	logFile = f

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	zerolog.MessageFieldName = "msg"

	run := uuid.New().String()[:8]
	Logger = zerolog.New(logFile).With().Str("run", run).Logger().Hook(timestampHook{})

	return nil
}

// Close closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
	}
}

// Debug returns a debug level event
func Debug() *zerolog.Event {
	return Logger.Debug()
}

// Info returns an info level event
func Info() *zerolog.Event {
	return Logger.Info()
}

// Warn returns a warn level event
func Warn() *zerolog.Event {
	return Logger.Warn()
}

// Error returns an error level event
func Error() *zerolog.Event {
	return Logger.Error()
}
