package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/unixpickle/essentials"
	"github.com/unixpickle/mesh-vol/meshvol"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func main() {
	var sliceCount int
	var concurrency int
	var contours bool
	var binPath string
	var plotPath string
	flag.IntVar(&sliceCount, "slices", meshvol.DefaultSliceCount, "number of profile bands")
	flag.IntVar(&concurrency, "concurrency", 0, "maximum Goroutines, or 0 for GOMAXPROCS")
	flag.BoolVar(&contours, "contours", false, "measure sections by contour reconstruction")
	flag.StringVar(&binPath, "bin", "", "optional output path for a binary copy of the profile")
	flag.StringVar(&plotPath, "plot", "", "optional output path for a PNG of the volume curve")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Usage: volume_profile [flags] <input.stl> <output.csv>")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputPath, outputPath := args[0], args[1]

	log.Println("Loading mesh...")
	mesh, err := meshvol.Load(inputPath, meshvol.ReadSTLMesh)
	essentials.Must(err)

	estimator := &meshvol.VolumeEstimator{
		Slices:      sliceCount,
		Concurrency: concurrency,
	}
	if contours {
		estimator.Area = meshvol.CrossSectionContoursArea
	}

	log.Println("Profiling volume...")
	profile := estimator.Profile(mesh)
	if profile == nil {
		essentials.Die("no geometry to profile in " + inputPath)
	}

	log.Println("Writing CSV...")
	f, err := os.Create(outputPath)
	essentials.Must(err)
	fmt.Fprintln(f, "elevation,area,volume")
	for i := 0; i < profile.NumSamples(); i++ {
		e := profile.Elevation(i)
		fmt.Fprintf(f, "%f,%f,%f\n", e, profile.Areas[i], profile.Volume(e))
	}
	essentials.Must(f.Close())

	if binPath != "" {
		log.Println("Writing binary profile...")
		essentials.Must(meshvol.Save(binPath, profile, meshvol.WriteVolumeProfile))
	}

	if plotPath != "" {
		log.Println("Plotting volume curve...")
		essentials.Must(plotProfile(profile, plotPath))
	}
}

func plotProfile(profile *meshvol.VolumeProfile, path string) error {
	points := make(plotter.XYs, profile.NumSamples())
	for i := range points {
		e := profile.Elevation(i)
		points[i].X = e
		points[i].Y = profile.Volume(e)
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return err
	}
	p := plot.New()
	p.Title.Text = "Enclosed volume by elevation"
	p.X.Label.Text = "Elevation"
	p.Y.Label.Text = "Volume"
	p.Add(plotter.NewGrid(), line)
	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
