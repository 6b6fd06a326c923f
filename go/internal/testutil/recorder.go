package testutil

import (
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/mcdev12/leaguefixture/go/internal/fixtures"
	"github.com/stretchr/testify/require"
)

// RecordingT records failures instead of failing the surrounding test
type RecordingT struct {
	Failed   bool
	Messages []string
}

func (r *RecordingT) Errorf(format string, args ...interface{}) {
	r.Failed = true
	r.Messages = append(r.Messages, fmt.Sprintf(format, args...))
}

// FailNow stops the goroutine running the fixture code, as testing.T does
func (r *RecordingT) FailNow() {
	r.Failed = true
	runtime.Goexit()
}

// ExpectFailure runs fn in its own goroutine, requires it to fail and returns the messages
func ExpectFailure(t *testing.T, fn func(ft fixtures.T)) string {
	t.Helper()

	rt := &RecordingT{}
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn(rt)
	}()
	<-done

	require.True(t, rt.Failed, "expected fixture code to fail")
	return strings.Join(rt.Messages, "\n")
}
