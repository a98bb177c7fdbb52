package haversine

// Answer files carry one little-endian float64 per pair — the reference
// distance — followed by one final float64 holding the average. They let a
// later run validate its arithmetic against the generator's.

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"

	"github.com/ardnew/spent/pkg"
)

// WriteAnswers computes the reference distance of every pair over a sphere
// of the given radius, streams each as a little-endian float64, appends the
// average, and returns that average.
func WriteAnswers(w io.Writer, d Data, radius float64) (float64, error) {
	bw := bufio.NewWriter(w)

	var sum float64

	for _, p := range d.Pairs {
		dist := Reference(p, radius)
		sum += dist

		if err := putFloat(bw, dist); err != nil {
			return 0, err
		}
	}

	avg := sum / float64(len(d.Pairs))

	if err := putFloat(bw, avg); err != nil {
		return 0, err
	}

	if err := bw.Flush(); err != nil {
		return 0, pkg.ErrWriteOutput.Wrap(err)
	}

	return avg, nil
}

// ReadAnswers reads an entire answer stream. The final element is the
// reference average; the rest are per-pair distances.
func ReadAnswers(r io.Reader) ([]float64, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, pkg.ErrReadInput.Wrap(err)
	}

	const width = 8

	if len(buf)%width != 0 {
		return nil, pkg.ErrReadInput.Wrapf(
			"truncated answer stream of %d bytes", len(buf))
	}

	answers := make([]float64, len(buf)/width)
	for i := range answers {
		bits := binary.LittleEndian.Uint64(buf[i*width:])
		answers[i] = math.Float64frombits(bits)
	}

	return answers, nil
}

func putFloat(w io.Writer, v float64) error {
	var buf [8]byte

	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))

	if _, err := w.Write(buf[:]); err != nil {
		return pkg.ErrWriteOutput.Wrap(err)
	}

	return nil
}
