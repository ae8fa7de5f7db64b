package util

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LogErr logs the error on the standard logger if the error is not nil.
// It returns true if the error is not nil.
// Examples:
// LogErr(err)
// LogErr(err, "error message")
// LogErr(err, "error message %s", "with argument")
func LogErr(err error, msgAndArgs ...interface{}) bool {
	return LogErrTo(logrus.StandardLogger(), err, msgAndArgs...)
}

// LogErrTo is LogErr with the given logger.
func LogErrTo(logger logrus.FieldLogger, err error, msgAndArgs ...interface{}) bool {
	if err == nil {
		return false
	}

	entry := logger.WithError(err)
	switch len(msgAndArgs) {
	case 0:
		entry.Error(err.Error())
	case 1:
		entry.Error(fmt.Sprint(msgAndArgs[0]))
	default:
		entry.Errorf(fmt.Sprint(msgAndArgs[0]), msgAndArgs[1:]...)
	}

	return true
}
