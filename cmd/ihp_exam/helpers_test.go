package main

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags restores every flag of c and its subcommands to its default so
// rootCmd can be executed repeatedly in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// runCLI executes rootCmd with args against the SQLite store at storePath and
// returns what it printed.
func runCLI(t *testing.T, storePath, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, env := range []string{"IHP_STORE", "IHP_STORE_PATH", "IHP_OUTPUT_DIR", "IHP_CHROME_TIMEOUT", "IHP_LOG_LEVEL", "IHP_SCALE"} {
		t.Setenv(env, "")
	}

	resetFlags(rootCmd)
	t.Cleanup(func() { resetFlags(rootCmd) })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--store-path", storePath, "--log-level", "error"))

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

// tempStore returns a store path inside a fresh temporary directory.
func tempStore(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "answers.db")
}
