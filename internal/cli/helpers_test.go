package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/catalog/internal/config"
)

// runCLI executes the root command with args and returns stdout, stderr and the error.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvVar, "")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// tempDB returns a catalog path inside a fresh temporary directory.
func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "products.db")
}

// seedCatalog adds the Pen/Notebook/Mug fixture through the CLI.
func seedCatalog(t *testing.T, db string) {
	t.Helper()
	for _, args := range [][]string{
		{"--db", db, "add", "--name", "Pen", "--shop", "Store1", "--price", "5"},
		{"--db", db, "add", "-n", "Notebook", "-g", "Store1", "-p", "12,15"},
		{"--db", db, "add", "-n", "Mug", "-g", "Store2", "-p", "8"},
	} {
		if _, stderr, err := runCLI(t, args...); err != nil {
			t.Fatalf("%v failed: %v\n%s", args, err, stderr)
		}
	}
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
