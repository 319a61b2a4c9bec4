package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"gopkg.microglot.org/gqlsdl.go/internal/config"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
	"gopkg.microglot.org/gqlsdl.go/internal/fs"
	"gopkg.microglot.org/gqlsdl.go/internal/parser"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func invoke(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	status := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return status, stdout.String(), stderr.String()
}

func decodeAll(t *testing.T, s string) []map[string]any {
	t.Helper()
	dec := json.NewDecoder(strings.NewReader(s))
	var out []map[string]any
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestRunFile(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{"a.graphql": "type A { b: String }"})
	status, stdout, stderr := invoke(t, "", "--root", root, "a.graphql")
	require.Equal(t, 0, status, stderr)
	trees := decodeAll(t, stdout)
	require.Len(t, trees, 1)
	require.Equal(t, "Document", trees[0]["kind"])
	require.Contains(t, stderr, "parsed")
}

func TestRunDirectoryWithFailure(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{
		"schemas/good.graphql": "scalar Date",
		"schemas/bad.gql":      "type A { b: C }\n}",
		"schemas/readme.md":    "# not a schema",
	})
	status, stdout, stderr := invoke(t, "", "--root", root, "--log-level", "error", "schemas")
	require.Equal(t, 1, status)
	require.Len(t, decodeAll(t, stdout), 1)
	require.Equal(t, "/schemas/bad.gql:2:1 -- S0002: Unexpected character \"}\", expected comment or definition\n", stderr)
}

func TestRunMissingTarget(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{"a.graphql": "scalar A"})
	status, _, stderr := invoke(t, "", "--root", root, "--log-level", "error", "missing.graphql", "a.graphql")
	require.Equal(t, 1, status)
	require.Contains(t, stderr, "M0001")
}

func TestRunStdinYAML(t *testing.T) {
	t.Parallel()

	status, stdout, stderr := invoke(t, "enum E { A }", "-o", "yaml", "--source-name", "stdin.graphql", "-")
	require.Equal(t, 0, status, stderr)
	var tree map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &tree))
	definition := tree["definitions"].([]any)[0].(map[string]any)
	require.Equal(t, "EnumTypeDefinition", definition["kind"])
}

func TestRunDescriptions(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{"a.graphql": "# The A\ntype A {\n  # The b\n  b: String\n}"})
	status, stdout, stderr := invoke(t, "", "--root", root, "--descriptions", "--output", "none", "a.graphql")
	require.Equal(t, 0, status, stderr)
	out := decodeAll(t, stdout)
	require.Len(t, out, 1)
	require.Equal(t, "/a.graphql", out[0]["file"])
	require.Equal(t, map[string]any{"A": "The A", "A.b": "The b"}, out[0]["descriptions"])
}

func TestRunUsage(t *testing.T) {
	t.Parallel()

	status, _, stderr := invoke(t, "")
	require.Equal(t, 2, status)
	require.Contains(t, stderr, "usage")

	status, _, _ = invoke(t, "", "--output", "xml", "a.graphql")
	require.Equal(t, 2, status)

	status, _, _ = invoke(t, "", "--help")
	require.Equal(t, 0, status)

	status, _, stderr = invoke(t, "type A", "--watch", "-")
	require.Equal(t, 2, status)
	require.Contains(t, stderr, "standard input cannot be watched")
}

// brokenFileSystem fails to open the listed paths with an unknown error.
type brokenFileSystem struct {
	fs.FileSystem
	broken map[string]bool
}

func (self *brokenFileSystem) Open(ctx context.Context, uri string) ([]fs.File, error) {
	if self.broken[uri] {
		return nil, exc.WrapUnknown(exc.Location{URI: uri}, errors.New("device unavailable"))
	}
	return self.FileSystem.Open(ctx, uri)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func testCLI(t *testing.T, files map[string]string, stdout io.Writer, stderr io.Writer) *cli {
	t.Helper()
	mem := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(mem, name, []byte(content), 0o644))
	}
	local, err := fs.NewFileSystemLocal("/", fs.WithOptionFSFactory(func(string) afero.Fs { return mem }))
	require.NoError(t, err)
	log := logrus.New()
	log.SetOutput(io.Discard)
	return &cli{
		cfg:    &config.Config{Output: "json", Concurrency: 2, Root: "/"},
		log:    log,
		fs:     &brokenFileSystem{FileSystem: local, broken: map[string]bool{"/broken.graphql": true}},
		stdin:  strings.NewReader(""),
		stdout: stdout,
		stderr: stderr,
	}
}

func TestOnceStopsOnFatal(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	c := testCLI(t, map[string]string{"/a.graphql": "scalar A"}, &stdout, &stderr)
	status := c.once(context.Background(), []string{"/missing.graphql", "/broken.graphql", "/a.graphql"})
	require.Equal(t, 1, status)
	require.Empty(t, stdout.String())
	lines := strings.Split(strings.TrimSpace(stderr.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "M0000")
	require.Contains(t, lines[0], "device unavailable")
	require.Contains(t, lines[1], "M0001")
}

func TestOncePrintFailureKeepsReported(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer
	c := testCLI(t, map[string]string{"/a.graphql": "scalar A"}, failingWriter{}, &stderr)
	status := c.once(context.Background(), []string{"/missing.graphql", "/a.graphql"})
	require.Equal(t, 1, status)
	require.Contains(t, stderr.String(), "stdout closed")
	require.Contains(t, stderr.String(), "M0001")
}

type lockedBuffer struct {
	lock sync.Mutex
	b    bytes.Buffer
}

func (self *lockedBuffer) Write(p []byte) (int, error) {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.b.Write(p)
}

func (self *lockedBuffer) String() string {
	self.lock.Lock()
	defer self.lock.Unlock()
	return self.b.String()
}

func TestRunWatch(t *testing.T) {
	t.Parallel()

	root := writeFiles(t, map[string]string{"s/a.graphql": "scalar A"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stdout := &lockedBuffer{}
	done := make(chan int, 1)
	go func() {
		args := []string{"--root", root, "--watch", "--log-level", "error", "s"}
		done <- run(ctx, args, strings.NewReader(""), stdout, io.Discard)
	}()
	passes := func() int {
		return strings.Count(stdout.String(), `"kind": "Document"`)
	}
	require.Eventually(t, func() bool { return passes() == 1 }, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(filepath.Join(root, "s", "a.graphql"), []byte("scalar B"), 0o644))
	require.Eventually(t, func() bool { return passes() == 2 }, 10*time.Second, 10*time.Millisecond)
	require.Contains(t, stdout.String(), `"value": "B"`)

	cancel()
	require.Equal(t, 0, <-done)
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	doc, err := parser.Parse(`# comment
interface Node { id: ID! }
type User implements Node, Named {
  # field comment
  id: ID!
  friends(first: Int, after: String): [User]
}
input Filter { name: String limit: Int }
extend type User { age(unit: String): Int }
scalar Date`, "")
	require.NoError(t, err)
	require.Equal(t, summary{definitions: 5, fields: 6, arguments: 3, interfaces: 2}, summarize(doc))
}
