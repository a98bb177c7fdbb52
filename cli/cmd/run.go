package cmd

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/ardnew/spent"
	"github.com/ardnew/spent/haversine"
	"github.com/ardnew/spent/pkg"
)

// margin is the largest acceptable disagreement between a computed distance
// and its reference answer.
const margin = 1e-10

// Run computes haversine distances over an instrumented input and prints the
// cycle-count profile of doing so.
type Run struct {
	Filter string `help:"Keep only profile rows matching this expression, e.g. 'Hits > 1 && Percent >= 1.0'." placeholder:"EXPR"  short:"f"`
	Match  string `help:"Keep only profile rows whose name fuzzy-matches this query."                         placeholder:"QUERY" short:"m"`
	Color  bool   `help:"Colorize the profile report." negatable:""`

	Input   string `arg:"" help:"Input data file (JSON)."                      type:"existingfile"`
	Answers string `arg:"" help:"Reference answer file (.f64) for validation." type:"existingfile" optional:""`
}

// Run implements the run subcommand.
func (r *Run) Run(_ context.Context) error {
	spent.BeginProfile()

	data, size, err := readInput(r.Input)
	if err != nil {
		return err
	}

	avg := averageDistances(data)

	if err := printSummary(r.Answers, data, size, avg); err != nil {
		return err
	}

	return spent.EndAndPrintProfile(
		spent.WithFilter(r.Filter),
		spent.WithMatch(r.Match),
		spent.WithColor(r.Color),
	)
}

// readInput loads and deserializes the input data set, returning the parsed
// pairs and the input size in bytes.
func readInput(path string) (haversine.Data, int, error) {
	defer spent.Default.Func("readInput").End()

	buf, err := read(path)
	if err != nil {
		return haversine.Data{}, 0, pkg.ErrReadInput.Wrap(err)
	}

	data, err := parse(buf)
	if err != nil {
		return haversine.Data{}, 0, err
	}

	return data, len(buf), nil
}

func read(path string) ([]byte, error) {
	defer spent.Default.Section("readInput", "read").End()

	return os.ReadFile(path)
}

func parse(buf []byte) (haversine.Data, error) {
	defer spent.Default.Section("readInput", "parse").End()

	return haversine.Parse(buf)
}

// averageDistances computes the mean haversine distance over all pairs.
func averageDistances(data haversine.Data) float64 {
	defer spent.Default.Func("averageDistances").End()

	sum := sumDistances(data.Pairs)

	return sum / float64(len(data.Pairs))
}

func sumDistances(pairs []haversine.Pair) (sum float64) {
	defer spent.Default.Loop("averageDistances", "pairs").End()

	for _, p := range pairs {
		sum += haversine.Reference(p, haversine.EarthRadius)
	}

	return sum
}

// validate recomputes every pair distance and compares it, and the overall
// average, against the reference answer stream.
func validate(path string, data haversine.Data, avg float64) (float64, error) {
	defer spent.Default.Func("validate").End()

	answers, err := readAnswers(path)
	if err != nil {
		return 0, err
	}

	// The final element is the reference average.
	if len(answers) < len(data.Pairs)+1 {
		return 0, pkg.ErrAnswersExhausted.Wrapf(
			"%d answers for %d pairs", len(answers), len(data.Pairs))
	}

	for i, p := range data.Pairs {
		dist := haversine.Reference(p, haversine.EarthRadius)
		if math.Abs(dist-answers[i]) > margin {
			return 0, pkg.ErrValidation.Wrapf(
				"pair %d: computed %v, reference %v", i, dist, answers[i])
		}
	}

	ref := answers[len(answers)-1]
	if math.Abs(avg-ref) > margin {
		return 0, pkg.ErrValidation.Wrapf(
			"average: computed %v, reference %v", avg, ref)
	}

	return ref, nil
}

func readAnswers(path string) ([]float64, error) {
	defer spent.Default.Section("validate", "answers").End()

	f, err := os.Open(path)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}
	defer f.Close()

	return haversine.ReadAnswers(f)
}

// printSummary writes the workload results, and the validation block when an
// answer file was given, before the profile report.
func printSummary(
	answers string,
	data haversine.Data,
	size int,
	avg float64,
) error {
	fmt.Printf("Input size: %d\n", size)
	fmt.Printf("Pair count: %d\n", len(data.Pairs))
	fmt.Printf("Haversine avg: %.16f\n", avg)

	if answers == "" {
		return nil
	}

	ref, err := validate(answers, data, avg)
	if err != nil {
		return err
	}

	fmt.Printf("\nValidation:\n")
	fmt.Printf("Reference avg: %.16f\n", ref)
	fmt.Printf("Difference: %.16f\n", avg-ref)

	return nil
}
