package logging

import (
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Setup configures the package-level logrus logger.
// format is "json" or "text"; an unknown level falls back to info.
func Setup(level, format string) {
	SetupTo(os.Stdout, level, format)
}

func SetupTo(out io.Writer, level, format string) {
	log.SetOutput(out)

	if strings.EqualFold(format, "text") {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&log.JSONFormatter{})
	}

	lvl, err := log.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
