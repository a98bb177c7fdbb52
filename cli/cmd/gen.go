package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ardnew/spent/haversine"
	"github.com/ardnew/spent/pkg"
)

// Gen generates a haversine input data set and its reference answer file.
type Gen struct {
	Dist  string `default:"uniform" enum:"uniform,cluster" help:"Point distribution."             short:"d"`
	Seed  uint64 `default:"0"                              help:"Random seed."                    short:"s"`
	Pairs int    `arg:""                                   help:"Number of coordinate pairs."`
	Dir   string `default:"."                              help:"Output directory."               short:"o" type:"existingdir"`
}

// Run implements the gen subcommand.
func (g *Gen) Run(_ context.Context) error {
	var data haversine.Data

	switch g.Dist {
	case "cluster":
		data = haversine.GenerateCluster(g.Pairs, g.Seed)
	default:
		data = haversine.GenerateUniform(g.Pairs, g.Seed)
	}

	dataPath := filepath.Join(g.Dir, fmt.Sprintf("data_%d_flex.json", g.Pairs))

	if err := writeFile(dataPath, func(f *os.File) error {
		return haversine.WriteJSON(f, data)
	}); err != nil {
		return err
	}

	var avg float64

	answerPath := filepath.Join(g.Dir,
		fmt.Sprintf("data_%d_haveranswer.f64", g.Pairs))

	if err := writeFile(answerPath, func(f *os.File) error {
		var err error
		avg, err = haversine.WriteAnswers(f, data, haversine.EarthRadius)

		return err
	}); err != nil {
		return err
	}

	fmt.Printf("Method: %s\n", g.Dist)
	fmt.Printf("Random seed: %d\n", g.Seed)
	fmt.Printf("Pair count: %d\n", g.Pairs)
	fmt.Printf("Expected avg: %.16f\n", avg)

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	if err := write(f); err != nil {
		f.Close()

		return err
	}

	if err := f.Close(); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}
