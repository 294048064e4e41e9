package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wireframe/pkg/config"
	"github.com/matzehuels/wireframe/pkg/errors"
	"github.com/matzehuels/wireframe/pkg/observability"
	"github.com/matzehuels/wireframe/pkg/pipeline"
)

// setup runs before every command: it applies --verbose, loads the config
// file and, when verbose, routes pipeline and cache events to the logger.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	level := LogInfo
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.Config = cfg
	if cfg.Path != "" {
		c.Logger.Debug("loaded config", "path", cfg.Path)
	}

	if c.verbose {
		hooks := &logHooks{logger: c.Logger}
		observability.SetPipelineHooks(hooks)
		observability.SetCacheHooks(hooks)
	}
	return nil
}

// stdinName is the argument that reads the document from standard input.
const stdinName = "-"

// readInput reads a wireframe document from path, or from stdin for "-",
// and derives the document name used for output files and cache scoping.
func readInput(stdin io.Reader, path string) (src, name string, err error) {
	var data []byte
	if path == stdinName {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read stdin")
		}
		return string(data), pipeline.DefaultName, nil
	}

	data, err = os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", "", errors.Wrap(errors.ErrCodeFileNotFound, err, "%s", path)
	}
	if err != nil {
		return "", "", errors.Wrap(errors.ErrCodeInvalidInput, err, "read %s", path)
	}
	return string(data), docName(path), nil
}

// docName turns a file path into a document name: the base name without its
// extension, with characters outside [A-Za-z0-9._-] replaced by '-'.
func docName(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			return r
		}
		return '-'
	}, stem)
	name = strings.TrimLeft(name, ".-_")
	if errors.ValidateDocumentName(name) != nil {
		return pipeline.DefaultName
	}
	return name
}

// outputBase returns the path, without extension, that artifacts for input
// are written to. dir overrides the input's directory; stdin writes to the
// current directory.
func outputBase(input, name, dir string) string {
	if dir == "" {
		if input == stdinName {
			dir = "."
		} else {
			dir = filepath.Dir(input)
		}
	}
	return filepath.Join(dir, name)
}

// writeOutput validates path and writes data to it.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
