package logger

import (
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	once sync.Once
	log  zerolog.Logger
)

// SetLevel configures the global log level. Call it once from main,
// before the first Get.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// Get returns the process-wide logger, building it on first use.
func Get() zerolog.Logger {
	once.Do(func() {
		log = zerolog.New(os.Stdout).With().Timestamp().Logger()
	})
	return log
}
