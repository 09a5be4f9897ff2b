package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

func slogLevel(level logrus.Level) slog.Level {
	switch {
	case level >= logrus.DebugLevel:
		return slog.LevelDebug
	case level == logrus.InfoLevel:
		return slog.LevelInfo
	case level == logrus.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// setupLogging configures the front end's logrus logger and the engine's
// slog logger. With a log file configured nothing is logged to the
// terminal, which is busy showing the board.
func setupLogging(c *config.Config) error {
	level, err := c.LogLevel()
	if err != nil {
		return err
	}
	log.SetLevel(level)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: c.Development()})

	engineOpts := &slog.HandlerOptions{Level: slogLevel(level)}

	if c.Log.File != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   c.Log.File,
			MaxSize:    c.Log.MaxSize,
			MaxBackups: c.Log.MaxBackups,
			MaxAge:     c.Log.MaxAgeDays(),
			Level:      level,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			return fmt.Errorf("unable to create log file hook: %w", err)
		}
		log.AddHook(hook)
		log.SetOutput(io.Discard)

		mines.Log = slog.New(slog.NewTextHandler(
			log.WriterLevel(logrus.DebugLevel), engineOpts,
		))
		return nil
	}

	if c.Development() {
		mines.Log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level: engineOpts.Level,
		}))
	} else {
		mines.Log = slog.New(slog.NewJSONHandler(os.Stderr, engineOpts))
	}
	return nil
}
