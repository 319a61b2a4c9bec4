package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"gopkg.microglot.org/gqlsdl.go/internal/ast"
	"gopkg.microglot.org/gqlsdl.go/internal/config"
	"gopkg.microglot.org/gqlsdl.go/internal/describe"
	"gopkg.microglot.org/gqlsdl.go/internal/dump"
	"gopkg.microglot.org/gqlsdl.go/internal/exc"
	"gopkg.microglot.org/gqlsdl.go/internal/fs"
	"gopkg.microglot.org/gqlsdl.go/internal/logging"
	"gopkg.microglot.org/gqlsdl.go/internal/parser"
)

const stdinTarget = "-"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cli struct {
	cfg    *config.Config
	log    *logrus.Logger
	fs     fs.FileSystem
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

type parsed struct {
	path string
	doc  *ast.Document
}

// run executes one invocation and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) int {
	cfg, targets, err := config.Load("gqlsdl", args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	log, err := logging.New(stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}
	if len(targets) < 1 {
		fmt.Fprintln(stderr, "usage: gqlsdl [flags] FILE|DIR...")
		return 2
	}
	local, err := fs.NewFileSystemLocal(cfg.Root)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 2
	}

	c := &cli{cfg: cfg, log: log, fs: local, stdin: stdin, stdout: stdout, stderr: stderr}
	if cfg.Watch {
		return c.watch(ctx, targets)
	}
	return c.once(ctx, targets)
}

// batchCodes are failures confined to one file. Any other reported code
// stops the remaining work.
var batchCodes = []string{
	exc.CodeFileNotFound,
	exc.CodeExpected,
	exc.CodeUnexpectedCharacter,
	exc.CodeUnexpectedNode,
	exc.CodeInputFieldArguments,
	exc.CodeInvalidNumber,
	exc.CodeInvalidString,
}

// once parses and prints targets a single time and returns the exit status.
func (c *cli) once(ctx context.Context, targets []string) int {
	status := 0
	reporter := exc.NewReporter(batchCodes)
	results, err := c.parse(ctx, targets, reporter)
	var fatal exc.Exception
	switch {
	case err == nil:
		if err := c.print(results); err != nil {
			fmt.Fprintln(c.stderr, err.Error())
			status = 1
		}
	case !errors.As(err, &fatal):
		// Reported exceptions are printed below with the rest.
		fmt.Fprintln(c.stderr, err.Error())
		status = 1
	}

	if err := reporter.Err(); err != nil {
		var me exc.MultiException
		if errors.As(err, &me) {
			for _, e := range me {
				fmt.Fprintln(c.stderr, e.Error())
			}
		}
		status = 1
	}
	return status
}

// files opens targets in order. It stops with the exception when the
// reporter considers a failure fatal.
func (c *cli) files(ctx context.Context, targets []string, reporter exc.Reporter) ([]fs.File, error) {
	var files []fs.File
	for _, target := range targets {
		if target == stdinTarget {
			files = append(files, fs.NewFileFN(stdinTarget, func() (io.ReadCloser, error) {
				return io.NopCloser(c.stdin), nil
			}))
			continue
		}
		c.log.WithField("target", target).Debug("opening")
		opened, err := c.fs.Open(ctx, target)
		if err != nil {
			if fatal := reporter.Report(asException(target, err)); fatal != nil {
				return nil, fatal
			}
			continue
		}
		files = append(files, opened...)
	}
	return files, nil
}

// parse parses every file of targets, at most cfg.Concurrency at a time.
// Failed files are sent to reporter and leave a nil entry in the result. A
// fatal failure cancels the files not yet parsed and is returned.
func (c *cli) parse(ctx context.Context, targets []string, reporter exc.Reporter) ([]parsed, error) {
	files, err := c.files(ctx, targets, reporter)
	if err != nil {
		return nil, err
	}
	results := make([]parsed, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := file.Path(gctx)
			results[i].path = path
			started := time.Now()
			body, err := file.Body(gctx)
			if err != nil {
				return reporter.Report(asException(path, err))
			}
			name := path
			if c.cfg.SourceName != "" {
				name = c.cfg.SourceName
			}
			doc, err := parser.Parse(body, name)
			if err != nil {
				return reporter.Report(asException(path, err))
			}
			results[i].doc = doc
			sum := summarize(doc)
			c.log.WithFields(logrus.Fields{
				"file":        path,
				"definitions": sum.definitions,
				"fields":      sum.fields,
				"arguments":   sum.arguments,
				"interfaces":  sum.interfaces,
				"duration":    time.Since(started),
			}).Info("parsed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// print writes each tree in target order and, when asked, its descriptions.
// Descriptions use JSON when trees are not printed.
func (c *cli) print(results []parsed) error {
	format, err := dump.ParseFormat(c.cfg.Output)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.doc == nil {
			continue
		}
		if err := dump.Write(c.stdout, format, r.doc); err != nil {
			return err
		}
		if !c.cfg.Descriptions {
			continue
		}
		descFormat := format
		if descFormat == dump.FormatNone {
			descFormat = dump.FormatJSON
		}
		out := map[string]any{
			"file":         r.path,
			"descriptions": describe.Collect(r.doc),
		}
		if err := dump.WriteValue(c.stdout, descFormat, out); err != nil {
			return err
		}
	}
	return nil
}

// summary counts the members declared by a document.
type summary struct {
	definitions int
	fields      int
	arguments   int
	interfaces  int
}

func summarize(doc *ast.Document) summary {
	var s summary
	for _, d := range doc.TypeDefinitions() {
		s.definitions++
		switch n := d.(type) {
		case *ast.ObjectTypeDefinition:
			s.object(n)
		case *ast.TypeExtensionDefinition:
			if n.Definition != nil {
				s.object(n.Definition)
			}
		case *ast.InterfaceTypeDefinition:
			s.addFields(n.FieldDefinitions())
		case *ast.InputObjectTypeDefinition:
			s.fields += len(n.InputValues())
		}
	}
	return s
}

func (s *summary) object(n *ast.ObjectTypeDefinition) {
	s.interfaces += len(n.InterfaceTypes())
	s.addFields(n.FieldDefinitions())
}

func (s *summary) addFields(fields []*ast.FieldDefinition) {
	for _, f := range fields {
		s.fields++
		s.arguments += len(f.InputValues())
	}
}

func asException(path string, err error) exc.Exception {
	var e exc.Exception
	if errors.As(err, &e) {
		return e
	}
	return exc.WrapUnknown(exc.Location{URI: path}, err)
}
