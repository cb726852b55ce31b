package ordset

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing"
)

// recorder is a tracer remembering info-level messages, which is where
// diagnostics about suspicious combinations of collections go.
type recorder struct {
	sync.Mutex
	infos []string
	level tracing.TraceLevel
}

// recordTraces routes all tracing through a recorder for the rest of test t.
func recordTraces(t *testing.T) *recorder {
	rec := &recorder{level: tracing.LevelInfo}
	tracing.SetTraceSelector(rec)
	t.Cleanup(func() {
		tracing.SetTraceSelector(nil)
	})
	return rec
}

func (r *recorder) Select(string) tracing.Trace { return r }

func (r *recorder) Errorf(string, ...interface{}) {}
func (r *recorder) Debugf(string, ...interface{}) {}

func (r *recorder) Infof(msg string, args ...interface{}) {
	r.Lock()
	defer r.Unlock()
	r.infos = append(r.infos, fmt.Sprintf(msg, args...))
}

func (r *recorder) P(string, interface{}) tracing.Trace { return r }
func (r *recorder) SetTraceLevel(l tracing.TraceLevel) { r.level = l }
func (r *recorder) GetTraceLevel() tracing.TraceLevel { return r.level }
func (r *recorder) SetOutput(io.Writer) {}

// warnings returns the recorded warnings and forgets them.
func (r *recorder) warnings() []string {
	r.Lock()
	defer r.Unlock()
	var w []string
	for _, msg := range r.infos {
		if strings.HasPrefix(msg, "warning:") {
			w = append(w, msg)
		}
	}
	r.infos = nil
	return w
}
