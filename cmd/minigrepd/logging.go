package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type LogConfig struct {
	LogFile    string // Log file path
	MaxSize    int    // Max size in megabytes
	MaxBackups int    // Max number of backups
	MaxAge     int    // Max age in days
	Compress   bool   // Compress backups
}

func DefaultLogConfig(logFile string) LogConfig {
	return LogConfig{
		LogFile:    logFile,
		MaxSize:    50,
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}
}

// SetupLogging mirrors the standard logger to stdout and a rotated file.
func SetupLogging(config LogConfig) error {
	if err := os.MkdirAll(filepath.Dir(config.LogFile), 0o755); err != nil {
		return err
	}

	rotated := &lumberjack.Logger{
		Filename:   config.LogFile,
		MaxSize:    config.MaxSize,
		MaxBackups: config.MaxBackups,
		MaxAge:     config.MaxAge,
		Compress:   config.Compress,
	}

	log.SetOutput(io.MultiWriter(os.Stdout, rotated))

	return nil
}
