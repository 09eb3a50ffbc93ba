package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs collects every JSON log line written through Logger.
	Logs *bytes.Buffer
	// Output collects what the console writes.
	Output *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("logs:\n%s", logs.String())
		}
	})

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,
		Output: &bytes.Buffer{},
	}
}

// Input - builds console input, one line per entry.
func (that *Suite) Input(lines ...string) io.Reader {
	if len(lines) == 0 {
		return strings.NewReader("")
	}

	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

// OutputLines - returns the console output split into lines.
func (that *Suite) OutputLines() []string {
	return strings.Split(strings.TrimRight(that.Output.String(), "\n"), "\n")
}
