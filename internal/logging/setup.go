package logging

import (
	"strings"

	"github.com/josephcopenhaver/constdecode/internal/args"
	log "github.com/sirupsen/logrus"
)

// SetupLogging configures the standard logger from the general options.
// Logs always go to stderr so decoded output on stdout stays clean.
func SetupLogging() {
	SetVerbosity(args.General.Verbose)

	if args.General.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{
			FieldMap: log.FieldMap{
				log.FieldKeyTime:  "timestamp",
				log.FieldKeyLevel: "@level",
				log.FieldKeyMsg:   "message",
			},
		})
	} else {
		color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
		log.SetFormatter(&log.TextFormatter{
			ForceColors:   color == "yes",
			DisableColors: color == "no",
			FullTimestamp: args.General.LogFullTimestamp,
		})
	}

	log.Debugf("Verbosity level: %v", VerbosityName())
}
