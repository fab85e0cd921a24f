package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh-vol/meshvol"
	"github.com/unixpickle/model3d/model2d"
)

func main() {
	var elevation float64
	var scale float64
	flag.Float64Var(&elevation, "elevation", math.NaN(), "cutting elevation (the middle of the mesh if unset)")
	flag.Float64Var(&scale, "scale", 100.0, "rasterization scale in pixels per unit")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: cross_section [flags] <input.stl> <output.png>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := meshvol.Load(inputPath, meshvol.ReadSTLMesh)
	essentials.Must(err)

	if math.IsNaN(elevation) {
		elevation = (mesh.Min().Z + mesh.Max().Z) / 2
	}

	log.Println("Cutting cross-section...")
	loops := meshvol.CrossSectionContours(mesh, elevation)
	if len(loops) == 0 {
		essentials.Die("the plane does not cut the mesh")
	}
	log.Printf("Centroid-ordered area: %f", meshvol.CrossSectionArea(mesh, elevation))
	log.Printf("Contour area: %f across %d loops", meshvol.CrossSectionContoursArea(mesh, elevation), len(loops))

	log.Println("Rendering...")
	outline := model2d.NewMesh()
	for _, loop := range loops {
		for i, c := range loop {
			outline.Add(&model2d.Segment{c, loop[(i+1)%len(loop)]})
		}
	}
	essentials.Must(model2d.Rasterize(outputPath, outline, scale))
}
