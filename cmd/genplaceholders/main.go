package main

import (
	"flag"
	"fmt"
	"os"

	"chosenoffset.com/platformgen/placeholders"
)

func main() {
	dataDir := flag.String("data", "data", "directory to write assets/ and atlases/ into")
	flag.Parse()

	fmt.Println("Platform Placeholder Graphics Generator")
	fmt.Println("=======================================")
	fmt.Println()

	if err := placeholders.GenerateAndSave(*dataDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Done! Point the generator config's atlas field at atlases/platforms.json.")
}
