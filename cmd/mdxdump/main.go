// Command mdxdump parses an MDX model file and prints a summary or its
// full JSON representation.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/wc3tools/mdx/internal/archivecache"
	"github.com/wc3tools/mdx/pkg/mdx"
)

func main() {
	path := flag.String("model", "", "Path to an MDX model file")
	jsonOut := flag.Bool("json", false, "Print the full model as JSON instead of a summary")
	validate := flag.Bool("validate", false, "Run post-parse model validation")
	flag.Parse()

	if *path == "" {
		log.Fatal("Please provide -model path")
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		log.Fatal(err)
	}

	archivecache.Insert(*path, []string{*path})

	parser := mdx.NewParser()
	model, err := parser.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	if *validate {
		if err := mdx.Validate(model); err != nil {
			log.Fatal(err)
		}
	}

	if *jsonOut {
		out, err := mdx.ToJSON(model)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(string(out))
		return
	}

	fmt.Printf("=== Model Information ===\n")
	fmt.Printf("Name: %s\n", model.Info.Name)
	fmt.Printf("Version: %d\n", model.Version)
	fmt.Printf("Bounds radius: %.4f\n\n", model.Info.BoundsRadius)

	fmt.Printf("=== Component Counts ===\n")
	fmt.Printf("Sequences:      %d\n", len(model.Sequences))
	fmt.Printf("Textures:       %d\n", len(model.Textures))
	fmt.Printf("Materials:      %d\n", len(model.Materials))
	fmt.Printf("Geosets:        %d\n", len(model.Geosets))
	fmt.Printf("Bones:          %d\n", len(model.Bones))
	fmt.Printf("Helpers:        %d\n", len(model.Helpers))
	fmt.Printf("Attachments:    %d\n", len(model.Attachments))
	fmt.Printf("Events:         %d\n", len(model.Events))
	fmt.Printf("Collisions:     %d\n", len(model.Collisions))
	fmt.Printf("Lights:         %d\n", len(model.Lights))
	fmt.Printf("Emitters:       %d\n", len(model.Emitters))
	fmt.Printf("Emitters v2:    %d\n", len(model.EmittersV2))
	fmt.Printf("Ribbons:        %d\n", len(model.Ribbons))
	fmt.Printf("Cameras:        %d\n", len(model.Cameras))
	fmt.Printf("Nodes (sparse): %d\n", len(model.Nodes))
}
