package util

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestLogErr(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	assert.False(t, LogErr(nil, "nothing"))
	assert.Empty(t, hook.AllEntries())

	assert.True(t, LogErr(errors.New("timeout"), "order refresh failed for %s", "BBG004730N88"))
	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "order refresh failed for BBG004730N88", hook.LastEntry().Message)
	}
}

func TestLogErrTo(t *testing.T) {
	logger, hook := test.NewNullLogger()

	assert.True(t, LogErrTo(logger.WithField("instrument", "BBG004730N88"), errors.New("rejected")))
	if assert.Len(t, hook.AllEntries(), 1) {
		entry := hook.LastEntry()
		assert.Equal(t, "rejected", entry.Message)
		assert.Equal(t, "BBG004730N88", entry.Data["instrument"])
	}
}
