package main

import (
	log "github.com/sirupsen/logrus"
	"os"
)

// InitLogger Receives the log level to be set in logrus as a string. This method
// parses the string and set the level to the logger. If the level string is not
// valid an error is returned
func InitLogger(logLevel string) error {
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	customFormatter := &log.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   false,
	}
	log.SetOutput(os.Stderr)
	log.SetFormatter(customFormatter)
	log.SetLevel(level)
	return nil
}
