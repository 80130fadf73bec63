package logging

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/almogdepaz/ursa/config"
	"github.com/almogdepaz/ursa/utils"
)

var logging *logrus.Logger

func init() {
	fcfg, err := config.NewConfig("config/config.yaml")
	var cfg *config.LogConfig
	if err == nil {
		cfg = fcfg.Log
	} else {
		// for testing
		cfg = &config.LogConfig{
			Level:  "debug",
			ToFile: false,
		}
	}
	logging, err = NewLogger(cfg)
	utils.PanicOnError(err)
}

// NewLogger builds a logger writing to stdout, and to cfg.Filename as well
// when cfg.ToFile is set.
func NewLogger(cfg *config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	var out io.Writer
	if cfg.ToFile {
		file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(os.Stdout, file)
	} else {
		out = os.Stdout
	}
	return &logrus.Logger{
		Out: out,
		Formatter: &logrus.TextFormatter{
			ForceColors:     true,
			TimestampFormat: "2006-01-02 15:04:05.000",
			FullTimestamp:   true,
		},
		Hooks: make(logrus.LevelHooks),
		Level: level,
	}, nil
}

// SetLogger replaces the logger returned by GetLogger.
func SetLogger(l *logrus.Logger) {
	logging = l
}

// should be called after InitLog
func GetLogger() *logrus.Logger {
	return logging
}
