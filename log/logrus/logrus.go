package logrus

import (
	"github.com/sirupsen/logrus"
	"github.com/unkn0wn-root/utf8codec"
)

var _ utf8codec.Logger = LogrusLogger{}

type LogrusLogger struct{ E *logrus.Entry }

// New tags every entry with component=utf8codec.
func New(l *logrus.Logger) LogrusLogger {
	return LogrusLogger{E: l.WithField("component", "utf8codec")}
}

func (l LogrusLogger) Debug(msg string, f utf8codec.Fields) { l.with(f).Debug(msg) }
func (l LogrusLogger) Info(msg string, f utf8codec.Fields)  { l.with(f).Info(msg) }
func (l LogrusLogger) Warn(msg string, f utf8codec.Fields)  { l.with(f).Warn(msg) }
func (l LogrusLogger) Error(msg string, f utf8codec.Fields) { l.with(f).Error(msg) }

func (l LogrusLogger) with(f utf8codec.Fields) *logrus.Entry {
	if len(f) == 0 {
		return l.E
	}
	// errors go under logrus.ErrorKey so formatters render them
	out := make(logrus.Fields, len(f))
	for k, v := range f {
		if err, ok := v.(error); ok && k == "err" {
			out[logrus.ErrorKey] = err
			continue
		}
		out[k] = v
	}
	return l.E.WithFields(out)
}
