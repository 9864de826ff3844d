package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/df07/go-tracer/pkg/core"
	"github.com/df07/go-tracer/pkg/imageio"
	"github.com/df07/go-tracer/pkg/loaders"
	"github.com/df07/go-tracer/pkg/renderer"
)

// errUsage marks command line mistakes
var errUsage = errors.New("usage")

// options holds the parsed command line
type options struct {
	width     int
	height    int
	sceneFile string
	output    string
	workers   int
	verbose   bool
}

func main() {
	logger := log.New(os.Stderr, "tracer: ", 0)

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}

	if err := run(context.Background(), opts, logger); err != nil {
		logger.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// parseArgs reads flags and the four positional arguments:
// <pixelWidth> <pixelHeight> <sceneFile> <outputFile>
func parseArgs(args []string, output io.Writer) (options, error) {
	var opts options

	flags := flag.NewFlagSet("tracer", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.IntVar(&opts.workers, "workers", 1, "Goroutines rendering rows (negative uses every CPU)")
	flags.BoolVar(&opts.verbose, "v", false, "Log render statistics")
	flags.Usage = func() {
		fmt.Fprintln(output, "Usage: tracer [options] <pixelWidth> <pixelHeight> <sceneFile> <outputFile>")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Renders a JSON scene of one camera, spheres and planes.")
		fmt.Fprintln(output, "Output is binary PPM (P6), or PNG when outputFile ends in .png.")
		fmt.Fprintln(output)
		fmt.Fprintln(output, "Options:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return opts, err
	}

	if flags.NArg() != 4 {
		flags.Usage()
		return opts, fmt.Errorf("%w: expected 4 arguments, got %d", errUsage, flags.NArg())
	}

	var err error
	if opts.width, err = parseDimension("pixelWidth", flags.Arg(0)); err != nil {
		return opts, err
	}
	if opts.height, err = parseDimension("pixelHeight", flags.Arg(1)); err != nil {
		return opts, err
	}
	opts.sceneFile = flags.Arg(2)
	opts.output = flags.Arg(3)

	return opts, nil
}

func parseDimension(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", errUsage, name, value)
	}
	return n, nil
}

// run loads the scene, renders it and writes the image. Nothing is written
// unless the render succeeds.
func run(ctx context.Context, opts options, logger core.Logger) error {
	sceneObj, err := loaders.LoadScene(opts.sceneFile)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(sceneObj, opts.width, opts.height)
	raytracer.SetConfig(renderer.Config{Workers: opts.workers})
	if opts.verbose {
		logger.Printf("Loaded %d objects from %s", len(sceneObj.Objects), opts.sceneFile)
		raytracer.SetLogger(logger)
	}

	buffer, _, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	if err := imageio.SaveImage(opts.output, buffer); err != nil {
		return err
	}

	if opts.verbose {
		logger.Printf("Render saved as %s", opts.output)
	}
	return nil
}
