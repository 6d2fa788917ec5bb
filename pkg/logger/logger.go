// Package logger описывает логгер приложения и его реализацию поверх zerolog.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger - логгер, которым пользуются все слои приложения.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(err error, format string, args ...any)
}

type zeroLogger struct {
	log zerolog.Logger
}

// NewZeroLogger создаёт логгер, пишущий JSON в stdout.
// Неизвестный уровень заменяется на info.
func NewZeroLogger(level string) Logger {
	return NewZeroLoggerTo(os.Stdout, level)
}

// NewZeroLoggerTo создаёт логгер, пишущий в w.
func NewZeroLoggerTo(w io.Writer, level string) Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	log := zerolog.New(w).With().
		Timestamp().
		Str("service", "inventory-view").
		Logger().
		Level(lvl)

	return &zeroLogger{log: log}
}

// NewNop возвращает логгер, который ничего не пишет. Используется в тестах.
func NewNop() Logger {
	return &zeroLogger{log: zerolog.Nop()}
}

func (l *zeroLogger) Debugf(format string, args ...any) {
	l.log.Debug().Msg(fmt.Sprintf(format, args...))
}

func (l *zeroLogger) Infof(format string, args ...any) {
	l.log.Info().Msg(fmt.Sprintf(format, args...))
}

func (l *zeroLogger) Warnf(format string, args ...any) {
	l.log.Warn().Msg(fmt.Sprintf(format, args...))
}

func (l *zeroLogger) Errorf(err error, format string, args ...any) {
	l.log.Error().Err(err).Msg(fmt.Sprintf(format, args...))
}
