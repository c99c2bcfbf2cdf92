package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. Fatal paths in the engine route through it
// so that every fatal error exits with status 1 after being recorded.
var Log = logrus.New()

func init() {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	Log.SetLevel(logrus.InfoLevel)
}

// Init applies the configured level and optional log file. An unparseable
// level falls back to info rather than failing startup.
func Init(level string, logFile string) {
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			Log.Warnf("cannot open log file %s: %v, keeping stderr", logFile, err)
			return
		}
		Log.SetOutput(io.MultiWriter(os.Stderr, f))
	}
}

func Debugf(format string, args ...interface{}) { Log.Debugf(format, args...) }
func Infof(format string, args ...interface{})  { Log.Infof(format, args...) }
func Warnf(format string, args ...interface{})  { Log.Warnf(format, args...) }
func Errorf(format string, args ...interface{}) { Log.Errorf(format, args...) }

// Fatalf logs and exits with status 1.
func Fatalf(format string, args ...interface{}) { Log.Fatalf(format, args...) }
