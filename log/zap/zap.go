package zap

import (
	"sort"

	"github.com/unkn0wn-root/utf8codec"
	"go.uber.org/zap"
)

var _ utf8codec.Logger = ZapLogger{}

type ZapLogger struct{ L *zap.Logger }

// New names the logger "utf8codec" so memo output is easy to filter.
func New(l *zap.Logger) ZapLogger { return ZapLogger{L: l.Named("utf8codec")} }

func (z ZapLogger) Debug(msg string, f utf8codec.Fields) { z.L.Debug(msg, zf(f)...) }
func (z ZapLogger) Info(msg string, f utf8codec.Fields)  { z.L.Info(msg, zf(f)...) }
func (z ZapLogger) Warn(msg string, f utf8codec.Fields)  { z.L.Warn(msg, zf(f)...) }
func (z ZapLogger) Error(msg string, f utf8codec.Fields) { z.L.Error(msg, zf(f)...) }

// zf converts f in key order so encoded output is stable.
func zf(f utf8codec.Fields) []zap.Field {
	if len(f) == 0 {
		return nil
	}
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]zap.Field, 0, len(f))
	for _, k := range keys {
		if err, ok := f[k].(error); ok {
			out = append(out, zap.NamedError(k, err))
			continue
		}
		out = append(out, zap.Any(k, f[k]))
	}
	return out
}
