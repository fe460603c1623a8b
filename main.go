package main

import (
	"flag"
	"fmt"
	"os"

	"arrowgrid/arrows"
	"arrowgrid/export"
	"arrowgrid/geometry"
	"arrowgrid/preview"
	"arrowgrid/spec"
)

func main() {
	var (
		geometryFile = flag.String("geometry", "data/arrow_geometry.json", "Geometry resource file (json or yaml)")
		outputDir    = flag.String("o", "output", "Output directory for generated path files")
		showPreview  = flag.Bool("preview", false, "Preview the decoded grids in the terminal before writing")
		dryRun       = flag.Bool("n", false, "Decode and generate without writing any files")
		help         = flag.Bool("help", false, "Show help")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [input.json]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Converts arrow-grid specification strings into drawing-tool path files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                          # Generate from input.json into ./output\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s puzzle.yaml              # Specifications may also be YAML\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -preview puzzle.json     # Inspect the grids first\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -geometry g.yaml -o out  # Custom geometry resource and output dir\n", os.Args[0])
	}

	flag.Parse()

	if *help {
		flag.Usage()
		os.Exit(0)
	}

	inputFile := "input.json"
	if args := flag.Args(); len(args) > 0 {
		inputFile = args[0]
	}

	if err := run(*geometryFile, inputFile, *outputDir, *showPreview, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(geometryFile, inputFile, outputDir string, showPreview, dryRun bool) error {
	table, err := geometry.Load(geometryFile)
	if err != nil {
		return err
	}

	specs, err := spec.LoadFile(inputFile)
	if err != nil {
		return err
	}

	if showPreview {
		if err := preview.Run(specs); err != nil {
			return err
		}
	}

	generator := arrows.NewGenerator(table)
	writer := export.NewWriter(outputDir)

	for _, s := range specs {
		set, err := generator.Build(s)
		if err != nil {
			return err
		}
		if dryRun {
			fmt.Printf("%s: %d arrows, %d lines (not written)\n", set.Colour, len(set.Arrows), len(set.Lines))
			continue
		}
		if err := writer.WriteGroup(set); err != nil {
			return err
		}
	}
	return nil
}
