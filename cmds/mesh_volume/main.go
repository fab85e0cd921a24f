package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh-vol/meshvol"
)

func main() {
	var elevation float64
	var sliceCount int
	var concurrency int
	var contours bool
	flag.Float64Var(&elevation, "elevation", math.Inf(1), "cutoff elevation (the top of the mesh if unset)")
	flag.IntVar(&sliceCount, "slices", meshvol.DefaultSliceCount, "number of integration slices")
	flag.IntVar(&concurrency, "concurrency", 0, "maximum Goroutines, or 0 for GOMAXPROCS")
	flag.BoolVar(&contours, "contours", false, "measure sections by contour reconstruction")
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_volume [flags] <input.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath := args[0]

	log.Println("Loading mesh...")
	mesh, err := meshvol.Load(inputPath, meshvol.ReadSTLMesh)
	essentials.Must(err)
	essentials.Must(mesh.Validate())
	log.Printf("Loaded %d vertices and %d triangles.", mesh.NumVertices(), mesh.NumTriangles())

	estimator := &meshvol.VolumeEstimator{
		Slices:      sliceCount,
		Concurrency: concurrency,
	}
	if contours {
		estimator.Area = meshvol.CrossSectionContoursArea
	}

	log.Println("Estimating volume...")
	volume := estimator.Estimate(mesh, elevation)
	if math.IsNaN(volume) {
		log.Println("Warning: the estimate is not a number; the mesh may be degenerate.")
	}
	fmt.Println("Volume:", volume)
}
