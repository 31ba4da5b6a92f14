// internal/source/demo.go
package source

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures
var fixtureFS embed.FS

// catalogue is the layout of fixtures/catalogue.yaml
type catalogue struct {
	Commands []commandFixture `yaml:"commands"`
	Files    []fileFixture    `yaml:"files"`
}

type commandFixture struct {
	Command    string `yaml:"command"`
	Subcommand string `yaml:"subcommand"`
	Fixture    string `yaml:"fixture"`
	output     string
}

type fileFixture struct {
	Path    string `yaml:"path"`
	Fixture string `yaml:"fixture"`
	content string
}

// Demo returns fixed, representative output for every call so the whole
// pipeline runs without ZFS installed.
type Demo struct {
	commands []commandFixture
	files    []fileFixture
}

// NewDemo loads the embedded fixture catalogue
func NewDemo() (*Demo, error) {
	sub, err := fs.Sub(fixtureFS, "fixtures")
	if err != nil {
		return nil, err
	}
	return LoadDemo(sub)
}

// LoadDemo loads catalogue.yaml and the fixtures it names from fsys
func LoadDemo(fsys fs.FS) (*Demo, error) {
	data, err := fs.ReadFile(fsys, "catalogue.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read demo catalogue: %w", err)
	}

	var cat catalogue
	if err := yaml.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse demo catalogue: %w", err)
	}

	for i := range cat.Commands {
		c := &cat.Commands[i]
		if c.Command == "" {
			return nil, fmt.Errorf("demo command %d has no name", i)
		}
		text, err := fs.ReadFile(fsys, c.Fixture)
		if err != nil {
			return nil, fmt.Errorf("failed to read demo fixture for %s: %w", c.Command, err)
		}
		c.output = string(text)
	}

	for i := range cat.Files {
		f := &cat.Files[i]
		if _, err := path.Match(f.Path, ""); err != nil {
			return nil, fmt.Errorf("bad demo file pattern %q: %w", f.Path, err)
		}
		text, err := fs.ReadFile(fsys, f.Fixture)
		if err != nil {
			return nil, fmt.Errorf("failed to read demo fixture for %s: %w", f.Path, err)
		}
		f.content = string(text)
	}

	return &Demo{commands: cat.Commands, files: cat.Files}, nil
}

// Run returns the fixture for name. Arguments other than the subcommand
// are ignored.
func (d *Demo) Run(ctx context.Context, name string, args []string, _ time.Duration) (string, error) {
	target := commandLine(name, args)
	if ctx.Err() != nil {
		return "", contextError(ctx, "exec", target)
	}

	for _, c := range d.commands {
		if c.Command != name {
			continue
		}
		if c.Subcommand == "" || slices.Contains(args, c.Subcommand) {
			return c.output, nil
		}
	}

	return "", &Error{Op: "exec", Target: target, Kind: ErrNotFound, Err: fmt.Errorf("not mocked in demo mode")}
}

// ReadFile returns the fixture whose path or pattern matches p
func (d *Demo) ReadFile(p string) (string, error) {
	for _, f := range d.files {
		if f.Path == p {
			return f.content, nil
		}
		if ok, _ := path.Match(f.Path, p); ok {
			return f.content, nil
		}
	}
	return "", &Error{Op: "read", Target: p, Kind: ErrNotFound, Err: fmt.Errorf("not mocked in demo mode")}
}
