package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/spent/haversine"
)

func TestGen_WritesDataAndAnswers(t *testing.T) {
	dir := t.TempDir()

	g := &Gen{Dist: "cluster", Seed: 42, Pairs: 20, Dir: dir}

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("gen failed: %v", err)
	}

	buf, err := os.ReadFile(filepath.Join(dir, "data_20_flex.json"))
	if err != nil {
		t.Fatalf("missing data file: %v", err)
	}

	data, err := haversine.Parse(buf)
	if err != nil {
		t.Fatalf("generated data does not parse: %v", err)
	}

	if len(data.Pairs) != 20 {
		t.Errorf("expected 20 pairs, got %d", len(data.Pairs))
	}

	f, err := os.Open(filepath.Join(dir, "data_20_haveranswer.f64"))
	if err != nil {
		t.Fatalf("missing answer file: %v", err)
	}
	defer f.Close()

	answers, err := haversine.ReadAnswers(f)
	if err != nil {
		t.Fatalf("generated answers do not read: %v", err)
	}

	if len(answers) != 21 {
		t.Errorf("expected 20 answers plus average, got %d", len(answers))
	}
}

func TestGen_Deterministic(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	for _, dir := range []string{dirA, dirB} {
		g := &Gen{Dist: "uniform", Seed: 7, Pairs: 10, Dir: dir}
		if err := g.Run(context.Background()); err != nil {
			t.Fatalf("gen failed: %v", err)
		}
	}

	a, err := os.ReadFile(filepath.Join(dirA, "data_10_flex.json"))
	if err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(dirB, "data_10_flex.json"))
	if err != nil {
		t.Fatal(err)
	}

	if string(a) != string(b) {
		t.Error("same seed produced different data files")
	}
}

func writeAnswerFile(t *testing.T, data haversine.Data) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "answers.f64")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := haversine.WriteAnswers(f, data, haversine.EarthRadius); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestValidate_Accepts(t *testing.T) {
	data := haversine.GenerateUniform(10, 42)
	path := writeAnswerFile(t, data)

	avg := averageDistances(data)

	ref, err := validate(path, data, avg)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	if ref != avg {
		t.Errorf("expected reference %v, got %v", avg, ref)
	}
}

func TestValidate_RejectsMismatch(t *testing.T) {
	data := haversine.GenerateUniform(10, 42)
	path := writeAnswerFile(t, data)

	// Perturb one pair past the error margin.
	data.Pairs[3].X0 += 1.0

	avg := averageDistances(data)

	_, err := validate(path, data, avg)
	if err == nil {
		t.Fatal("expected validation failure")
	}

	if !strings.Contains(err.Error(), "failed validation") {
		t.Errorf("expected validation error, got: %v", err)
	}
}

func TestValidate_RejectsShortAnswers(t *testing.T) {
	data := haversine.GenerateUniform(10, 42)
	path := writeAnswerFile(t, data)

	// More pairs than recorded answers.
	grown := haversine.GenerateUniform(20, 42)

	_, err := validate(path, grown, averageDistances(grown))
	if err == nil {
		t.Fatal("expected exhaustion failure")
	}

	if !strings.Contains(err.Error(), "validation input exhausted") {
		t.Errorf("expected exhaustion error, got: %v", err)
	}
}

func TestReadInput_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")

	content := `{"pairs": [{"x0": 1, "y0": 2, "x1": 3, "y1": 4}]}`

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	data, size, err := readInput(path)
	if err != nil {
		t.Fatalf("readInput failed: %v", err)
	}

	if size != len(content) {
		t.Errorf("expected size %d, got %d", len(content), size)
	}

	if len(data.Pairs) != 1 {
		t.Errorf("expected 1 pair, got %d", len(data.Pairs))
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	_, _, err := readInput(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}

	if !strings.Contains(err.Error(), "failed to read input") {
		t.Errorf("expected read error, got: %v", err)
	}
}

// TestRun_EndToEnd drives the full instrumented workload over generated
// input, including validation and the profile report.
func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()

	g := &Gen{Dist: "uniform", Seed: 42, Pairs: 50, Dir: dir}
	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("gen failed: %v", err)
	}

	r := &Run{
		Input:   filepath.Join(dir, "data_50_flex.json"),
		Answers: filepath.Join(dir, "data_50_haveranswer.f64"),
	}

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("run failed: %v", err)
	}
}
