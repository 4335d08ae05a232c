// dumpview renders repository object-dump text as grouped attribute views.
//
// Usage:
//
//	iapi session-dump.txt | dumpview
//	dumpview -kind user user-dump.txt
//	dumpview browse object-dump.txt
//
// Input is the line-oriented attribute listing emitted by a repository
// server for an object, user or group. The entity kind is sniffed from the
// attribute names unless -kind is given.
//
// Output modes (auto-detected):
//
//	terminal  — styled Unicode output (default when TTY)
//	llm       — terse plain text for AI consumption (default when piped)
//	json      — structured JSON for automation
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dctmtools/dumpview/internal/config"
	"github.com/dctmtools/dumpview/internal/detect"
	"github.com/dctmtools/dumpview/pkg/browse"
	"github.com/dctmtools/dumpview/pkg/category"
	"github.com/dctmtools/dumpview/pkg/dump"
	"github.com/dctmtools/dumpview/pkg/render"
	"github.com/dctmtools/dumpview/pkg/view"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	interactive := false
	if len(args) > 0 && args[0] == "browse" {
		interactive = true
		args = args[1:]
	}

	fs := flag.NewFlagSet("dumpview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kindFlag := fs.String("kind", "auto", "Entity kind: auto, object, user, group")
	formatFlag := fs.String("format", config.DefaultFormat, "Output format: auto, terminal, llm, json")
	themeFlag := fs.String("theme", config.DefaultTheme, "Theme: default, orca, mono")
	noColorFlag := fs.Bool("no-color", false, "Disable colors")
	debugFlag := fs.Bool("debug", false, "Print parse diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	flags := config.Flags{
		Format:  *formatFlag,
		Theme:   *themeFlag,
		NoColor: *noColorFlag,
		Debug:   *debugFlag,
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			flags.FormatSet = true
		case "theme":
			flags.ThemeSet = true
		case "no-color":
			flags.NoColorSet = true
		case "debug":
			flags.DebugSet = true
		}
	})
	cfg := config.Resolve(flags)

	input, code := readInput(fs.Args(), stdin, stderr)
	if code >= 0 {
		return code
	}

	kind, err := resolveKind(*kindFlag, input)
	if err != nil {
		fmt.Fprintf(stderr, "dumpview: %v\n", err)
		return 2
	}

	records, dropped, err := dump.ParseReaderWith(cfg.Tables, kind, bytes.NewReader(input))
	if err != nil {
		fmt.Fprintf(stderr, "dumpview: %v\n", err)
		return 1
	}
	if cfg.Debug {
		fmt.Fprintf(stderr, "dumpview: kind=%s (%s) attributes=%d dropped=%d theme=%s (%s) format=%s (%s)\n",
			kind, *kindFlag, len(records), dropped,
			cfg.Theme, cfg.ThemeSource, cfg.Format, cfg.FormatSource)
	}

	if interactive {
		if err := browse.Run(kind, cfg.Tables, records, render.ThemeByName(cfg.Theme)); err != nil {
			fmt.Fprintf(stderr, "dumpview: %v\n", err)
			return 1
		}
		return 0
	}

	sections := view.Compose(kind, records)
	mode := resolveFormat(cfg.Format, stdout)
	renderer, code := selectRenderer(mode, cfg.Theme, stdout, stderr)
	if code >= 0 {
		return code
	}
	fmt.Fprint(stdout, renderer.Render(kind.String(), sections))
	return 0
}

// readInput reads the dump text from the file argument, or stdin when no
// argument is given. Returns (input, -1) on success; (nil, exitCode) on error.
func readInput(args []string, stdin io.Reader, stderr io.Writer) ([]byte, int) {
	if len(args) > 1 {
		fmt.Fprintf(stderr, "dumpview: expected at most one input file, got %d\n", len(args))
		return nil, 2
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(stderr, "dumpview: %v\n", err)
			return nil, 1
		}
		return data, -1
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		fmt.Fprintf(stderr, "dumpview: reading stdin: %v\n", err)
		return nil, 1
	}
	if len(data) == 0 {
		fmt.Fprintf(stderr, "dumpview: no input on stdin\n")
		return nil, 2
	}
	return data, -1
}

func resolveKind(kindFlag string, input []byte) (category.EntityKind, error) {
	if kindFlag == "auto" || kindFlag == "" {
		return detect.Sniff(input), nil
	}
	return category.ParseEntityKind(kindFlag)
}

func selectRenderer(mode, themeName string, stdout, stderr io.Writer) (render.Renderer, int) {
	switch mode {
	case "json":
		return render.NewJSON(), -1
	case "llm":
		return render.NewLLM(), -1
	case "terminal":
		theme := render.ThemeByName(themeName)
		width := 80
		if f, ok := stdout.(*os.File); ok {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
		return render.NewTerminal(theme, width), -1
	default:
		fmt.Fprintf(stderr, "dumpview: unknown format %q (expected auto, terminal, llm, json)\n", mode)
		return nil, 2
	}
}

func resolveFormat(format string, w io.Writer) string {
	if format != "auto" {
		return format
	}
	// Auto-detect: TTY = terminal, piped = llm.
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return "terminal"
	}
	return "llm"
}
