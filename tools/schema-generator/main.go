package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/grovetools/hookcfg/registry"
)

func main() {
	outputPath := flag.String("out", filepath.Join("schema", "hookcfg.schema.json"), "path to write the generated schema to")
	flag.Parse()

	schemaBytes, err := registry.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	if dir := filepath.Dir(*outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Error creating schema directory: %v", err)
		}
	}

	if err := os.WriteFile(*outputPath, schemaBytes, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", *outputPath)
}
