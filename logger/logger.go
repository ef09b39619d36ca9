package logger

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	log  *logrus.Logger
	once sync.Once
)

// Init configures the shared logger: stdout plus a size-rotated file when
// LOG_FILE is set. Level comes from LOG_LEVEL (default info).
func Init() {
	once.Do(func() {
		log = logrus.New()
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

		if lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
			log.SetLevel(lvl)
		} else {
			log.SetLevel(logrus.InfoLevel)
		}

		out := io.Writer(os.Stdout)
		if path := os.Getenv("LOG_FILE"); path != "" {
			out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
				Filename:   path,
				MaxSize:    20, // MB
				MaxBackups: 5,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
		log.SetOutput(out)
	})
}

// L returns the shared logger, initializing it with defaults if needed.
func L() *logrus.Logger {
	if log == nil {
		Init()
	}
	return log
}
