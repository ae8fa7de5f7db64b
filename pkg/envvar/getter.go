package envvar

import (
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

// String returns the value of the environment variable named n, or the
// given default when it is not set.
func String(n string, args ...string) (string, bool) {
	return lookup(n, "string", func(s string) (string, error) { return s, nil }, args)
}

func Duration(n string, args ...time.Duration) (time.Duration, bool) {
	return lookup(n, "time.Duration", time.ParseDuration, args)
}

func Bool(n string, args ...bool) (bool, bool) {
	return lookup(n, "bool", strconv.ParseBool, args)
}

// lookup parses the variable with parse, the bool result is false when the
// variable is unset or malformed and the default is returned.
func lookup[T any](n, kind string, parse func(string) (T, error), defaults []T) (T, bool) {
	var defaultValue T
	if len(defaults) > 0 {
		defaultValue = defaults[0]
	}

	str, ok := os.LookupEnv(n)
	if !ok {
		return defaultValue, false
	}

	v, err := parse(str)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse env var %s=%q as %s, incorrect format", n, str, kind)
		return defaultValue, false
	}

	return v, true
}
