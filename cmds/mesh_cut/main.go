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
	flag.Float64Var(&elevation, "elevation", math.NaN(), "cutting elevation (the middle of the mesh if unset)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: mesh_cut [flags] <input.stl> <below.stl> <above.stl>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, belowPath, abovePath := args[0], args[1], args[2]

	log.Println("Loading mesh...")
	mesh, err := meshvol.Load(inputPath, meshvol.ReadSTLMesh)
	essentials.Must(err)

	if math.IsNaN(elevation) {
		elevation = (mesh.Min().Z + mesh.Max().Z) / 2
	}

	log.Println("Splitting mesh...")
	below, above := meshvol.SplitAtElevation(mesh, elevation)
	log.Printf("Below has %d triangles; above has %d.", below.NumTriangles(), above.NumTriangles())

	log.Println("Saving parts...")
	essentials.Must(below.Model3D().SaveGroupedSTL(belowPath))
	essentials.Must(above.Model3D().SaveGroupedSTL(abovePath))
}
