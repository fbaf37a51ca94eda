// Command leafbatch analyses every PNG image listed in a dataset manifest,
// writing results to <output_dir>/<tag>/<image>/.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"leaf-cells/internal/area"
	"leaf-cells/internal/cli"
	"leaf-cells/internal/manifest"
)

func main() {
	debug := flag.Bool("debug", false, "Write intermediate images and log at debug level")
	configPath := flag.String("config", "", "Path to YAML config (default: user config dir)")
	workers := flag.Int("workers", 0, "Files analysed in parallel (default from config)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: leafbatch [-debug] [-workers n] manifest_file output_dir")
		flag.PrintDefaults()
	}

	args, err := cli.ParseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		cli.Fatal(err)
	}
	if len(args) != 2 {
		flag.Usage()
		os.Exit(1)
	}
	manifestFile, outputDir := args[0], args[1]

	if err := cli.RequireFile(manifestFile, "manifest file"); err != nil {
		cli.Fatal(err)
	}
	m, err := manifest.Load(manifestFile)
	if err != nil {
		cli.Fatal(err)
	}
	entries, err := m.Images()
	if err != nil {
		cli.Fatal(err)
	}

	env, err := cli.Start(os.Args[0], *configPath, *debug, outputDir)
	if err != nil {
		cli.Fatal(err)
	}
	defer env.Close()
	env.Config = env.Config.WithWorkers(*workers)
	env.Log.Info().Str("manifest", manifestFile).Int("images", len(entries)).Msg("loaded manifest")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	results, err := env.Analyzer().RunBatch(ctx, entries, outputDir)

	analysed, empty := 0, 0
	for _, r := range results {
		switch {
		case r.Err == nil && r.Result != nil:
			analysed++
		case errors.Is(r.Err, area.ErrEmptySegmentation):
			empty++
			fmt.Printf("No cells detected: %s\n", r.Entry.Path)
		}
	}
	fmt.Printf("Analysed %d of %d images", analysed, len(entries))
	if empty > 0 {
		fmt.Printf(" (%d without cells)", empty)
	}
	fmt.Println()

	if errors.Is(err, context.Canceled) {
		env.Close()
		cli.Fatal(fmt.Errorf("batch interrupted: %w", err))
	}
	if err != nil {
		env.Close()
		cli.Fatal(err)
	}
}
