// Command potreedump decodes a Potree 2.0 point cloud directory and writes
// its columns as a comma-separated text file.
//
// Usage:
//
//	potreedump --path <dir> --output <dir>
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lidario/potree/format"
	"github.com/lidario/potree/metadata"
	"github.com/lidario/potree/reader"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "potreedump: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("potreedump", flag.ContinueOnError)

	var path, output string
	fs.StringVar(&path, "path", "", "path to the Potree point cloud directory to read")
	fs.StringVar(&path, "p", "", "shorthand for --path")
	fs.StringVar(&output, "output", "", "path to the directory to save output to")
	fs.StringVar(&output, "o", "", "shorthand for --output")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if path == "" || output == "" {
		fs.Usage()
		return fmt.Errorf("--path and --output are required")
	}

	encoding, err := metadata.PeekEncoding(filepath.Join(path, "metadata.json"))
	if err != nil {
		return err
	}

	kind := reader.KindBrotli
	if encoding == format.EncodingDefault {
		kind = reader.KindUncompressed
	}

	r, err := reader.New(reader.Config{Name: kind})
	if err != nil {
		return err
	}

	result, err := r.Decode(path)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	return writePointsText(filepath.Join(output, "points.txt"), result)
}
