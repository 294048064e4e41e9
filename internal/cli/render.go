package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/wireframe/pkg/pipeline"
)

// renderFlags holds the command-line flags for the render command. Zero
// values defer to the config file.
type renderFlags struct {
	output     string  // output file (single input and format) or directory
	formats    string  // comma-separated formats
	style      string  // simple or handdrawn
	seed       uint64  // hand-drawn wobble seed
	viewport   string  // overrides the document header
	strict     bool    // reject recoverable input
	background string  // canvas fill
	fontScale  float64 // multiplies every font size
	noCache    bool
	refresh    bool
	jobs       int // files rendered concurrently
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:   "render [file...]",
		Short: "Render wireframe files to SVG and other formats",
		Long: `Render one or more wireframe files.

Each file is parsed, laid out and drawn independently; several files are
rendered concurrently. Outputs are written next to each input (or into
--output) as <name>.svg, <name>.draw.json, <name>.layout.json, <name>.dot and
<name>.structure.svg depending on --format. Use "-" to read from stdin.

Rendered artifacts are cached; --refresh re-renders and --no-cache skips the
cache entirely.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.renderOptions(cmd, flags)
			if err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.InOrStdin(), args, opts, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (one input, one format) or directory")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), json, layout, dot, structure (comma-separated)")
	cmd.Flags().StringVar(&flags.style, "style", "", "visual style: simple, handdrawn")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for the hand-drawn style")
	cmd.Flags().StringVar(&flags.viewport, "viewport", "", "override the header viewport: mobile, tablet, desktop, default")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on unrecognized tokens and indentation jumps")
	cmd.Flags().StringVar(&flags.background, "background", "", "canvas background colour")
	cmd.Flags().Float64Var(&flags.fontScale, "font-scale", 0, "multiply every font size")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "re-render even when cached")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", runtime.GOMAXPROCS(0), "files rendered concurrently")

	registerValueCompletions(cmd)
	return cmd
}

// renderOptions merges the config with the flags the user set.
func (c *CLI) renderOptions(cmd *cobra.Command, flags renderFlags) (pipeline.Options, error) {
	opts, err := c.baseOptions()
	if err != nil {
		return opts, err
	}
	set := cmd.Flags().Changed

	opts.Formats = parseFormats(flags.formats)
	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return opts, err
	}
	if set("style") {
		if err := pipeline.ValidateStyle(flags.style); err != nil {
			return opts, err
		}
		opts.Style = flags.style
	}
	if set("seed") {
		opts.Seed = flags.seed
	}
	if set("viewport") {
		if err := pipeline.ValidateViewport(flags.viewport); err != nil {
			return opts, err
		}
		opts.Viewport = flags.viewport
	}
	if set("strict") {
		opts.Strict = flags.strict
	}
	if set("background") {
		opts.Background = flags.background
	}
	if set("font-scale") {
		if flags.fontScale <= 0 {
			return opts, fmt.Errorf("--font-scale must be positive, got %v", flags.fontScale)
		}
		opts.FontScale = flags.fontScale
	}
	opts.Refresh = flags.refresh
	return opts, nil
}

// renderedFile is the outcome of rendering one input.
type renderedFile struct {
	input  string
	paths  []string
	result *pipeline.Result
}

// runRender renders every input with one pipeline run each. The runner is
// shared; each run gets its own session.
func (c *CLI) runRender(ctx context.Context, stdin io.Reader, inputs []string, opts pipeline.Options, flags renderFlags) error {
	if n := countStdin(inputs); n > 1 {
		return fmt.Errorf("stdin (%q) can be read only once, got it %d times", stdinName, n)
	}
	if err := prepareOutputDir(flags.output, len(inputs), len(opts.Formats)); err != nil {
		return err
	}

	runner, err := c.newRunner(ctx, flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newFileSpinner(ctx, os.Stderr, len(inputs))
	spinner.start()

	results := make([]renderedFile, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, flags.jobs))
	for i, input := range inputs {
		g.Go(func() error {
			rf, err := c.renderFile(gctx, runner, stdin, input, opts, flags.output, len(inputs))
			if err != nil {
				return fmt.Errorf("%s: %w", input, err)
			}
			results[i] = rf
			spinner.fileDone()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		spinner.fail("Render failed")
		return err
	}
	spinner.stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	for _, rf := range results {
		r := rf.result
		printSuccess("Rendered %s", StyleHighlight.Render(rf.input))
		for _, p := range rf.paths {
			printFile(p)
		}
		printStats(r.Stats.NodeCount, r.Stats.ScreenCount, r.Stats.DiagnosticCount, r.CacheInfo.RenderHit)
		for _, d := range r.Document.Diagnostics() {
			printDetail("%s", d)
		}
		for _, d := range r.Layout.Diagnostics {
			printDetail("%s", d)
		}
	}
	prog.done(fmt.Sprintf("Rendered %s", plural(len(inputs), "file")))

	if len(inputs) == 1 && hasDiagnostics(results[0].result) {
		printNewline()
		printNextStep("Inspect diagnostics", appName+" check "+inputs[0])
	}
	return nil
}

// renderFile runs the pipeline for one input and writes its artifacts.
func (c *CLI) renderFile(ctx context.Context, runner *pipeline.Runner, stdin io.Reader, input string, opts pipeline.Options, output string, inputs int) (renderedFile, error) {
	src, name, err := readInput(stdin, input)
	if err != nil {
		return renderedFile{}, err
	}
	opts.Source, opts.Name = src, name
	// Formats is shared between goroutines; the runner may rewrite it.
	opts.Formats = append([]string(nil), opts.Formats...)

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return renderedFile{}, err
	}

	rf := renderedFile{input: input, result: result}
	for _, format := range opts.Formats {
		path := artifactPath(input, name, format, output, inputs, len(opts.Formats))
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return renderedFile{}, err
		}
		c.Logger.Debug("wrote artifact", "path", path, "bytes", len(result.Artifacts[format]))
		rf.paths = append(rf.paths, path)
	}
	return rf, nil
}

// artifactPath picks the file for one format of one input. An --output
// with an extension names the file directly when there is exactly one input
// and one format; otherwise it is a directory.
func artifactPath(input, name, format, output string, inputs, formats int) string {
	if output != "" && isFilePath(output) && inputs == 1 && formats == 1 {
		return output
	}
	return outputBase(input, name, output) + pipeline.Extension(format)
}

// prepareOutputDir creates --output when it will be used as a directory.
func prepareOutputDir(output string, inputs, formats int) error {
	if output == "" || (isFilePath(output) && inputs == 1 && formats == 1) {
		return nil
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

func isFilePath(p string) bool {
	return filepath.Ext(p) != "" && !strings.HasSuffix(p, string(filepath.Separator))
}

func countStdin(inputs []string) int {
	n := 0
	for _, in := range inputs {
		if in == stdinName {
			n++
		}
	}
	return n
}

func hasDiagnostics(r *pipeline.Result) bool {
	return r != nil && r.Stats.DiagnosticCount > 0
}
