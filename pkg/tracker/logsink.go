package tracker

import (
	"github.com/sirupsen/logrus"
)

// LogSink renders events through a logrus logger.
type LogSink struct {
	logger logrus.FieldLogger
}

func NewLogSink(logger logrus.FieldLogger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Emit(e Event) {
	entry := s.logger.WithFields(logrus.Fields{
		"event":      string(e.Type),
		"instrument": e.Instrument,
	})

	if e.Order != nil {
		entry = entry.WithField("order_id", e.Order.OrderID)
	}

	switch e.Type {
	case EventOrderSubmitted:
		if e.Confirmation != nil {
			entry = entry.WithField("order_id", e.Confirmation.OrderID)
		}
		entry.Warn(e.Message)

	case EventOrderCancelFailed:
		entry.WithError(e.Error).Error(e.Message)

	case EventOrderCancelled:
		entry.Debug(e.Message)

	default:
		entry.Info(e.Message)
	}
}
