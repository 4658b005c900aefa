package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New создаёт логгер, пишущий в stdout
func New(levelStr, format string) *slog.Logger {
	return NewWithWriter(os.Stdout, levelStr, format)
}

// NewWithWriter создаёт и настраивает новый экземпляр slog.Logger
// уровень логирования определяется строковым параметром,
// format "json" включает JSON-обработчик, всё остальное — текстовый
func NewWithWriter(w io.Writer, levelStr, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: true, // нужно, чтобы видеть файл и строку, откуда был вызов лога
		Level:     ParseLevel(levelStr),
	}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel преобразует строковый уровень из конфига в slog.Level
func ParseLevel(levelStr string) slog.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		// по умолчанию используем INFO, если в конфиге указано что-то некорректное
		return slog.LevelInfo
	}
}

// Discard — логгер, который ничего не пишет, удобен в тестах
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
