package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/lawnchairsociety/amazeing/internal/config"
	"github.com/lawnchairsociety/amazeing/internal/logger"
	"github.com/lawnchairsociety/amazeing/internal/maze"
	"github.com/lawnchairsociety/amazeing/internal/output"
	"github.com/lawnchairsociety/amazeing/internal/render"
	"github.com/mattn/go-isatty"
)

func main() {
	loggingConfig := flag.String("logging", "logging.yaml", "Path to logging config YAML file")
	envFile := flag.String("env", ".env", "Optional file of environment overrides")
	noUI := flag.Bool("no-ui", false, "Print the maze once instead of running the interactive menu")
	plain := flag.Bool("plain", false, "Render with plain ASCII characters instead of ANSI colours")
	showPath := flag.Bool("show-path", false, "Show the solution path when printing without the menu")
	pngFile := flag.String("png", "", "Also write the maze as a PNG image to this file")
	pngScale := flag.Int("png-scale", 8, "Size in image pixels of one maze pixel")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <config_file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fail(fmt.Errorf("loading %s: %w", *envFile, err))
	}

	// Initialize logger first (before any logging)
	logConfig, _ := logger.LoadConfig(*loggingConfig)
	if err := logger.Initialize(logConfig); err != nil {
		fail(err)
	}

	cfg, err := config.LoadConfig(flag.Arg(0))
	if err != nil {
		fail(err)
	}

	build := func(seed *int64) (*maze.Result, error) {
		opts := cfg.Options()
		opts.Seed = seed
		result, err := maze.Generate(opts)
		if err != nil {
			return nil, err
		}
		if err := output.WriteFile(cfg.OutputFile, output.FromResult(result)); err != nil {
			return nil, err
		}
		logger.Info("Maze written", "file", cfg.OutputFile, "seed", result.Seed, "solved", result.Solved)
		return result, nil
	}

	result, err := build(cfg.Seed)
	if err != nil {
		fail(err)
	}
	fmt.Println("Output file generated successfully.")

	if *pngFile != "" {
		if err := writePNG(*pngFile, result, *pngScale); err != nil {
			fail(err)
		}
		fmt.Printf("Image %s written OK.\n", *pngFile)
	}

	color := !*plain && isatty.IsTerminal(os.Stdout.Fd())

	if *noUI || !isatty.IsTerminal(os.Stdin.Fd()) {
		canvas := render.Build(result.Grid, result.Forbidden, result.Path, *showPath)
		if color {
			fmt.Print(canvas.ANSI(0))
		} else {
			fmt.Print(canvas.Plain())
		}
		return
	}

	regenerate := func() (*maze.Result, error) {
		return build(nil)
	}
	newMenu(os.Stdin, os.Stdout, color, result, regenerate).run()
}

func writePNG(path string, result *maze.Result, scale int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating image %s: %w", path, err)
	}
	defer f.Close()

	canvas := render.Build(result.Grid, result.Forbidden, result.Path, true)
	if err := canvas.WritePNG(f, scale, 0); err != nil {
		return fmt.Errorf("writing image %s: %w", path, err)
	}
	return nil
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
