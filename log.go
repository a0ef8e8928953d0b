package bdd

import "github.com/sirupsen/logrus"

// logFields is a shorthand for the structured fields attached to every
// construction-tracing log line.
type logFields = logrus.Fields

func newLogger(s Settings) *logrus.Entry {
	lg := s.logger
	if lg == nil {
		lg = logrus.StandardLogger()
	}
	lg.SetLevel(s.logLevel)
	return logrus.NewEntry(lg).WithField("component", "bdd")
}
