package bdd

import "github.com/sirupsen/logrus"

// Settings carries the constructor options understood by New: sizing hints
// for the unique and compute tables (the tables are plain Go maps, but a
// good capacity hint still avoids rehashing during a large build), the
// module construction policy, and the logger used for tracing. There is no
// setting for ATLEAST semantics: Atleast gates are always converted as
// k-of-n voting gates.
type Settings struct {
	nodeCapacity  int
	cacheCapacity int
	eagerModules  bool
	logger        *logrus.Logger
	logLevel      logrus.Level
}

func defaultSettings() Settings {
	return Settings{
		nodeCapacity:  10000,
		cacheCapacity: 10000,
		eagerModules:  false,
		logger:        logrus.StandardLogger(),
		logLevel:      logrus.WarnLevel,
	}
}

// Option configures the Bdd built by New.
type Option func(*Settings)

// NodeCapacity is a configuration option. It sets a preferred initial
// capacity hint for the unique table. The table still grows past this
// capacity as needed; this only avoids early rehashing for a build expected
// to produce many vertices.
func NodeCapacity(n int) Option {
	return func(s *Settings) {
		if n > 0 {
			s.nodeCapacity = n
		}
	}
}

// CacheCapacity is a configuration option. It sets a preferred initial
// capacity hint for the AND/OR compute tables.
func CacheCapacity(n int) Option {
	return func(s *Settings) {
		if n > 0 {
			s.cacheCapacity = n
		}
	}
}

// EagerModules is a configuration option. When set, every module gate
// reachable from the root is converted into its own sub-BDD before the main
// conversion pass starts, instead of the default of building each module's
// sub-BDD lazily, the first time the parent traversal reaches its proxy.
func EagerModules(flag bool) Option {
	return func(s *Settings) {
		s.eagerModules = flag
	}
}

// Logger sets the logrus logger used for construction tracing. The default
// is the standard logrus logger at Warn level.
func Logger(l *logrus.Logger) Option {
	return func(s *Settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// LogLevel sets the verbosity of construction tracing.
func LogLevel(level logrus.Level) Option {
	return func(s *Settings) {
		s.logLevel = level
	}
}
