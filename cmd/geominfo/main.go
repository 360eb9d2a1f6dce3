package main

import (
	"fmt"
	"log"
	"os"

	"github.com/grainforge/microgrid/grid"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("geominfo %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("geominfo - inspect legacy geom microstructure files")
			fmt.Println()
			fmt.Println("Usage: geominfo <file.geom>")
			fmt.Println()
			fmt.Println("Prints cells, physical size, origin, material count, and the")
			fmt.Println("provenance log of a geometry file.")
			return
		}
	}

	log.SetOutput(os.Stderr)
	log.SetFlags(0)

	if len(os.Args) != 2 {
		log.Fatal("usage: geominfo <file.geom>")
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("Open: %v", err)
	}
	defer f.Close()

	g, err := grid.LoadGeom(f)
	if err != nil {
		log.Fatalf("Load: %v", err)
	}

	fmt.Println(g)
	if comments := g.Comments(); len(comments) > 0 {
		fmt.Println()
		for _, c := range comments {
			fmt.Println(c)
		}
	}
}
