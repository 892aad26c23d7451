// Package main provides the micrograd CLI.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/micrograd/internal/autodiff"
	"github.com/born-ml/micrograd/internal/gradcheck"
	"github.com/born-ml/micrograd/internal/nn"
	"github.com/born-ml/micrograd/internal/parallel"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	if len(os.Args) < 2 {
		usage(os.Stdout)
		return
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("micrograd %s\n", version)
	case "demo":
		err = runDemo(os.Stdout)
	case "mlp":
		err = runMLP(os.Stdout, os.Args[2:])
	case "check":
		err = runCheck(os.Stdout, os.Args[2:])
	default:
		usage(os.Stderr)
		os.Exit(2)
	}

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("%s: %v", os.Args[1], err)
	}
}

func usage(w io.Writer) {
	fmt.Fprintf(w, "micrograd %s - scalar reverse-mode autodiff\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Run e = (a + b) + a*b and print every gradient")
	fmt.Fprintln(w, "  mlp        Build a seeded MLP, run forward and backward")
	fmt.Fprintln(w, "  check      Compare backward against finite differences")
}

// runDemo prints the reference expression with a = -4, b = 2.
func runDemo(w io.Writer) error {
	a := autodiff.New(-4)
	b := autodiff.New(2)
	c := autodiff.Add(a, b)
	d := autodiff.Mul(a, b)
	e := autodiff.Add(c, d)
	e.Backward()

	for _, n := range []struct {
		name string
		v    *autodiff.Value
	}{{"a", a}, {"b", b}, {"c", c}, {"d", d}, {"e", e}} {
		fmt.Fprintf(w, "%s = %v\n", n.name, n.v)
	}
	return nil
}

// runMLP builds an MLP from flags, backpropagates from the sum of its
// outputs and prints per-parameter gradients.
func runMLP(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("mlp", flag.ContinueOnError)
	fs.SetOutput(w)
	seed := fs.Int64("seed", 42, "Random seed for weight initialization")
	sizesFlag := fs.String("sizes", "4,4,1", "Comma-separated layer sizes")
	inputsFlag := fs.String("inputs", "2,3,-1", "Comma-separated input values (defines fan-in)")
	workers := fs.Int("workers", 1, "Goroutines per layer for neuron evaluation")
	verbose := fs.Bool("v", false, "Print every parameter")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sizes, err := parseSizes(*sizesFlag)
	if err != nil {
		return fmt.Errorf("-sizes: %w", err)
	}
	inputs, err := parseFloats(*inputsFlag)
	if err != nil {
		return fmt.Errorf("-inputs: %w", err)
	}

	model := nn.NewMLP(len(inputs), sizes, rand.New(rand.NewSource(*seed)))
	if *workers > 1 {
		model.SetParallel(parallel.Config{Enabled: true, NumWorkers: *workers, MinItems: 2})
	}

	x := make([]*autodiff.Value, len(inputs))
	for i, v := range inputs {
		x[i] = autodiff.New(v)
	}
	out := model.Forward(x)
	loss := autodiff.Sum(out...)
	loss.Backward()

	fmt.Fprintln(w, model)
	for i, o := range out {
		fmt.Fprintf(w, "out[%d] = %.6g\n", i, o.Data())
	}
	fmt.Fprintln(w, nn.ParameterStats(model))

	if *verbose {
		names := model.ParameterNames()
		for i, p := range model.Parameters() {
			fmt.Fprintf(w, "%-10s data=%+.6f grad=%+.6f\n", names[i], p.Data(), p.Grad())
		}
	}
	return nil
}

// runCheck runs the built-in gradient check suite.
func runCheck(w io.Writer, args []string) error {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(w)
	cfg := gradcheck.DefaultConfig()
	fs.Float64Var(&cfg.Epsilon, "eps", cfg.Epsilon, "Central-difference step")
	fs.Float64Var(&cfg.Tolerance, "tol", cfg.Tolerance, "Comparison tolerance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.Epsilon <= 0 || cfg.Tolerance <= 0 {
		return fmt.Errorf("%w: -eps and -tol must be positive", errUsage)
	}

	failed := 0
	for _, r := range gradcheck.Run(gradcheck.Cases(), cfg) {
		status := "ok"
		if r.Err != nil {
			status = "FAIL: " + r.Err.Error()
			failed++
		}
		fmt.Fprintf(w, "%-16s %s\n", r.Name, status)
	}
	if failed > 0 {
		return fmt.Errorf("%d gradient checks failed", failed)
	}
	return nil
}

// parseSizes parses "4,4,1" into positive layer sizes.
func parseSizes(s string) ([]int, error) {
	fields := splitList(s)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no layer sizes", errUsage)
	}
	sizes := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", errUsage, i, n)
		}
		sizes[i] = n
	}
	return sizes, nil
}

// parseFloats parses "2,3,-1" into values. An empty list is allowed.
func parseFloats(s string) ([]float64, error) {
	fields := splitList(s)
	out := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
