package logger

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger printf-style логгер поверх zap.
// Пишет JSON в stdout и, если указан файл, дублирует записи в файл.
type Logger struct {
	sugar *zap.SugaredLogger
	file  *os.File
}

// New создает логгер с указанным уровнем (debug, info, warn, error).
// Пустой путь к файлу означает запись только в stdout.
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig())
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), lvl),
	}

	var file *os.File
	if filePath != "" {
		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file %s: %w", filePath, err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(file), lvl))
	}

	base := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{
		sugar: base.Sugar(),
		file:  file,
	}, nil
}

// NewNop возвращает логгер, который ничего не пишет (для тестов)
func NewNop() *Logger {
	return &Logger{sugar: zap.NewNop().Sugar()}
}

// With возвращает дочерний логгер с постоянными полями
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{
		sugar: l.sugar.With(keysAndValues...),
		file:  l.file,
	}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.sugar.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.sugar.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.sugar.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.sugar.Errorf(format, v...)
}

// Fatal пишет сообщение и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.sugar.Fatalf(format, v...)
}

// Close сбрасывает буферы и закрывает файл логов
func (l *Logger) Close() error {
	_ = l.sugar.Sync()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	level = strings.ToLower(strings.TrimSpace(level))
	if level == "" {
		return zapcore.InfoLevel, nil
	}

	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return lvl, fmt.Errorf("logger: unknown level %q", level)
	}
	return lvl, nil
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stack",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     func(t time.Time, enc zapcore.PrimitiveArrayEncoder) { enc.AppendString(t.UTC().Format(time.RFC3339Nano)) },
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
