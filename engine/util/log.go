package util

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var GLOBAL_LOG_LEVEL = LogLevelInfo
var GLOBAL_LOG_CATEGORIES = LogGame | LogWeapon | LogIO

type LogLevel int

const (
	LogLevelError LogLevel = 1 << iota
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
)

type LogCategory int

const (
	LogPhysics LogCategory = 1 << iota
	LogInput
	LogEffects
	LogAudio
	LogAnimation
	LogWeapon
	LogGame
	LogIO
	LogWindow
)

var categoryNames = map[string]LogCategory{
	"physics":   LogPhysics,
	"input":     LogInput,
	"effects":   LogEffects,
	"audio":     LogAudio,
	"animation": LogAnimation,
	"weapon":    LogWeapon,
	"game":      LogGame,
	"io":        LogIO,
	"window":    LogWindow,
}

var logger = newLogger(os.Stderr)

func newLogger(out io.Writer) zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly}).With().Timestamp().Logger()
}

// SetLogOutput replaces the console writer, mostly for tests.
func SetLogOutput(out io.Writer) {
	logger = newLogger(out)
}

// SetLogLevel accepts error, warn, info or debug. Unknown values fall back to info.
func SetLogLevel(level string) {
	switch strings.ToLower(level) {
	case "error":
		GLOBAL_LOG_LEVEL = LogLevelError
	case "warn", "warning":
		GLOBAL_LOG_LEVEL = LogLevelWarning
	case "debug", "trace":
		GLOBAL_LOG_LEVEL = LogLevelDebug
	default:
		GLOBAL_LOG_LEVEL = LogLevelInfo
	}
}

// SetLogCategories enables exactly the named categories. "all" enables everything.
func SetLogCategories(names ...string) {
	var mask LogCategory
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "all" {
			mask = ^LogCategory(0)
			break
		}
		if cat, ok := categoryNames[name]; ok {
			mask |= cat
		}
	}
	GLOBAL_LOG_CATEGORIES = mask
}

func (c LogCategory) String() string {
	for name, cat := range categoryNames {
		if cat == c {
			return name
		}
	}
	return "unknown"
}

func log(cat LogCategory, lvl LogLevel, txt string) {
	if lvl > GLOBAL_LOG_LEVEL {
		return
	}
	if GLOBAL_LOG_CATEGORIES&cat == 0 {
		return
	}
	var event *zerolog.Event
	switch lvl {
	case LogLevelError:
		event = logger.Error()
	case LogLevelWarning:
		event = logger.Warn()
	case LogLevelDebug:
		event = logger.Debug()
	default:
		event = logger.Info()
	}
	event.Str("cat", cat.String()).Msg(txt)
}

func LogPhysicsDebug(txt string) {
	log(LogPhysics, LogLevelDebug, txt)
}

func LogPhysicsWarning(txt string) {
	log(LogPhysics, LogLevelWarning, txt)
}

func LogInputDebug(txt string) {
	log(LogInput, LogLevelDebug, txt)
}

func LogInputWarning(txt string) {
	log(LogInput, LogLevelWarning, txt)
}

func LogEffectsDebug(txt string) {
	log(LogEffects, LogLevelDebug, txt)
}

func LogAudioDebug(txt string) {
	log(LogAudio, LogLevelDebug, txt)
}

func LogAudioError(txt string) {
	log(LogAudio, LogLevelError, txt)
}

func LogAnimationDebug(txt string) {
	log(LogAnimation, LogLevelDebug, txt)
}

func LogWeaponDebug(txt string) {
	log(LogWeapon, LogLevelDebug, txt)
}

func LogWeaponInfo(txt string) {
	log(LogWeapon, LogLevelInfo, txt)
}

func LogWeaponWarning(txt string) {
	log(LogWeapon, LogLevelWarning, txt)
}

func LogWeaponError(txt string) {
	log(LogWeapon, LogLevelError, txt)
}

func LogGameInfo(txt string) {
	log(LogGame, LogLevelInfo, txt)
}

func LogGameDebug(txt string) {
	log(LogGame, LogLevelDebug, txt)
}

func LogGameError(txt string) {
	log(LogGame, LogLevelError, txt)
}

func LogIOInfo(txt string) {
	log(LogIO, LogLevelInfo, txt)
}

func LogIOError(txt string) {
	log(LogIO, LogLevelError, txt)
}

func LogWindowInfo(txt string) {
	log(LogWindow, LogLevelInfo, txt)
}

func LogWindowError(txt string) {
	log(LogWindow, LogLevelError, txt)
}
