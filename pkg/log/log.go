// Package log provides the Zerolog-based package logger shared by the
// CLI and the run engine. Output goes to a console writer on stderr so
// stdout stays clean for the confirmation line.
package log

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var pkgLogger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
	With().Timestamp().Logger().
	Level(zerolog.InfoLevel)

// SetVerbose lowers the level so Debug events are emitted.
func SetVerbose() {
	pkgLogger = pkgLogger.Level(zerolog.DebugLevel)
}

// SetQuiet silences the logger entirely.
func SetQuiet() {
	pkgLogger = zerolog.Nop()
}

func Debug() *zerolog.Event { return pkgLogger.Debug() }
func Info() *zerolog.Event  { return pkgLogger.Info() }
func Warn() *zerolog.Event  { return pkgLogger.Warn() }
func Error() *zerolog.Event { return pkgLogger.Error() }
func Fatal() *zerolog.Event { return pkgLogger.Fatal() }
func Log() *zerolog.Event   { return pkgLogger.Log() }

// Printf sends an info-level event. Arguments are handled in the
// manner of fmt.Printf.
func Printf(format string, v ...interface{}) {
	pkgLogger.Info().CallerSkipFrame(1).Msgf(format, v...)
}

// Print sends an info-level event. Arguments are handled in the
// manner of fmt.Print.
func Print(v ...interface{}) {
	pkgLogger.Info().CallerSkipFrame(1).Msg(fmt.Sprint(v...))
}

func Fatalf(format string, v ...any) {
	pkgLogger.Fatal().Msgf(format, v...)
}
