package haversine

import (
	"encoding/binary"
	"encoding/json"
	"io"
	"math"
	"math/rand/v2"
	"sort"

	"github.com/ardnew/spent/pkg"
)

// newRNG returns a deterministic generator for the given seed, so a
// (distribution, seed, count) triple always reproduces the same data set.
func newRNG(seed uint64) *rand.Rand {
	var key [32]byte

	binary.LittleEndian.PutUint64(key[:8], seed)

	return rand.New(rand.NewChaCha8(key))
}

// GenerateUniform draws n pairs uniformly over the full coordinate bounds.
func GenerateUniform(n int, seed uint64) Data {
	rng := newRNG(seed)

	pairs := make([]Pair, 0, n)
	for range n {
		pairs = append(pairs, Pair{
			X0: uniform(rng, XLow, XHigh),
			Y0: uniform(rng, YLow, YHigh),
			X1: uniform(rng, XLow, XHigh),
			Y1: uniform(rng, YLow, YHigh),
		})
	}

	return Data{Pairs: pairs}
}

// GenerateCluster draws n pairs from a small number of random coordinate
// clusters, yielding the skewed distributions that make averages interesting.
// The cluster count grows with n.
func GenerateCluster(n int, seed uint64) Data {
	rng := newRNG(seed)

	parts := int(math.Sqrt(float64(clusterSize(n))))

	xClusters := clusterBounds(XLow, XHigh, parts, rng)
	yClusters := clusterBounds(YLow, YHigh, parts, rng)

	step := (n + parts - 1) / parts

	pairs := make([]Pair, 0, n)
	for i := range n {
		x := xClusters[i/step]
		y := yClusters[i/step]

		pairs = append(pairs, Pair{
			X0: uniform(rng, x[0], x[1]),
			Y0: uniform(rng, y[0], y[1]),
			X1: uniform(rng, x[0], x[1]),
			Y1: uniform(rng, y[0], y[1]),
		})
	}

	return Data{Pairs: pairs}
}

// WriteJSON serializes the data set as two-space indented JSON, the format
// [Parse] reads back.
func WriteJSON(w io.Writer, d Data) error {
	buf, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	if _, err := w.Write(buf); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}

// clusterSize scales the number of clusters with the pair count.
func clusterSize(n int) int {
	switch {
	case n <= 1_000:
		return 4
	case n <= 100_000:
		return 8
	case n <= 1_000_000:
		return 16
	case n <= 10_000_000:
		return 32
	default:
		return 64
	}
}

// clusterBounds splits [start, end] into parts contiguous intervals at
// random breakpoints.
func clusterBounds(start, end float64, parts int, rng *rand.Rand) [][2]float64 {
	breakpoints := make([]float64, 0, parts+1)

	for range parts - 1 {
		breakpoints = append(breakpoints, uniform(rng, start, end))
	}

	sort.Float64s(breakpoints)

	breakpoints = append([]float64{start}, breakpoints...)
	breakpoints = append(breakpoints, end)

	bounds := make([][2]float64, 0, parts)
	for i := range parts {
		bounds = append(bounds, [2]float64{breakpoints[i], breakpoints[i+1]})
	}

	return bounds
}

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}
