package cmd

import (
	"bytes"
	"sync"
	"testing"

	"github.com/spf13/cobra"
)

// mu serialises TestExecute, as the same command can be
// executed by parallel tests and cobra keeps its state in the command.
var mu sync.Mutex

// TestExecute is a helper that executes a cobra command with args
// and returns everything it wrote to its out and err writers, together with its error.
func TestExecute(t *testing.T, command *cobra.Command, args ...string) (string, error) {
	t.Helper()

	mu.Lock()
	defer mu.Unlock()

	buf := new(syncBuffer)
	command.SetOut(buf)
	command.SetErr(buf)

	if args == nil {
		// cobra falls back to os.Args for nil
		args = []string{}
	}

	command.SetArgs(args)

	_, err := command.ExecuteC()

	return buf.String(), err
}

// syncBuffer is a io.Writer safe for concurrent use.
type syncBuffer struct {
	b bytes.Buffer
	m sync.Mutex
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.Write(p) //nolint:wrapcheck
}

func (b *syncBuffer) String() string {
	b.m.Lock()
	defer b.m.Unlock()

	return b.b.String()
}
