package main

import (
	"fmt"
	"os"

	"vpapic.dev/internal/config"
	"vpapic.dev/internal/content"
	"vpapic.dev/internal/export"
	"vpapic.dev/internal/services"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: generate <output-dir>")
		fmt.Println("       DATA_PATH=<dir> generate <output-dir>  (export custom project data)")
		os.Exit(1)
	}

	outputDir := os.Args[1]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	renderer, err := content.NewRenderer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load templates: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Exporting %d projects to %s...\n", cfg.Catalog.Len(), outputDir)

	exp := export.New(renderer, services.NewProjectService(cfg.Catalog), cfg.Site)
	exp.Progress = func(path string) {
		fmt.Printf("  Created %s\n", path)
	}

	n, err := exp.Export(outputDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "  ERROR: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done! %d files written.\n", n)
	fmt.Println("Copy your public assets (project screenshots, portrait) alongside the export.")
}
