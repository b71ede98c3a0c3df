// Package logger builds the logrus logger every service shares.
package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New creates the service logger. Development gets human-readable output,
// everything else ships JSON.
func New(service, env string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if env == "development" {
		log.SetLevel(logrus.DebugLevel)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetLevel(logrus.InfoLevel)
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	log.WithFields(logrus.Fields{"service": service, "env": env}).Info("logger initialized")
	return log
}
