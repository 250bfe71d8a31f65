// Command md4collide searches for random strings whose MD4 digests share a
// truncated hex prefix, either with each other or with the digest of a
// fixed target, and reports how many probes each prefix length took.
//
// Usage:
//
//	md4collide [flags]            run the search
//	md4collide [flags] msg ...    print the MD4 digest of each msg
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"golang.org/x/term"

	"jayconrod.com/md4lab/crypto"
	"jayconrod.com/md4lab/search"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "md4collide: %v\n", err)
		if errors.Is(err, errUsage) || errors.Is(err, search.ErrInvalidConfig) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("md4collide", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := fs.String("mode", "pair", "pair: candidates against each other; target: candidates against -target")
	length := fs.Int("length", 8, "length of each random candidate")
	maxPrefix := fs.Int("k", 4, "longest prefix to search, in hex digits (1-32)")
	seed := fs.Uint("seed", 1, "seed of the first run; run i uses seed+i")
	target := fs.String("target", search.DefaultTarget, "fixed string for -mode=target")
	runs := fs.Int("runs", 1, "number of independent runs")
	asJSON := fs.Bool("json", false, "write one JSON object per line instead of a table")
	verbose := fs.Bool("v", false, "log each pass to stderr")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	if fs.NArg() > 0 {
		return printDigests(stdout, fs.Args())
	}

	m, err := search.ParseMode(*mode)
	if err != nil {
		return err
	}
	if *runs < 1 {
		return fmt.Errorf("%w: %d runs, need at least 1", search.ErrInvalidConfig, *runs)
	}
	cfg := search.Config{
		Length:    *length,
		MaxPrefix: *maxPrefix,
		Mode:      m,
		Target:    *target,
		Logger:    newLogger(stderr, *verbose),
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	var rep reporter
	if *asJSON {
		rep = &jsonReporter{enc: json.NewEncoder(stdout)}
	} else {
		rep = newTableReporter(stdout)
	}

	all := make([][]search.Result, 0, *runs)
	for i := 0; i < *runs; i++ {
		gen := search.NewSeededStrings(uint32(*seed) + uint32(i))
		var results []search.Result
		err := search.Walk(cfg, gen, func(r search.Result) error {
			results = append(results, r)
			return rep.result(i, r, search.Expected(m, r.Prefix))
		})
		if err != nil {
			return err
		}
		all = append(all, results)
	}
	if *runs > 1 {
		for i, mean := range search.MeanProbes(all) {
			if err := rep.mean(i+1, mean, search.Expected(m, i+1)); err != nil {
				return err
			}
		}
	}
	return rep.flush()
}

// printDigests writes the digest of each message, and for every message
// after the first, how many digest bits differ from the first one's.
func printDigests(w io.Writer, msgs []string) error {
	first := crypto.MD4Sum([]byte(msgs[0]))
	for i, msg := range msgs {
		sum := crypto.MD4Sum([]byte(msg))
		if _, err := fmt.Fprintf(w, "md4(%q) = %x\n", msg, sum[:]); err != nil {
			return err
		}
		if i == 0 {
			continue
		}
		dist := crypto.HammingDistance(first[:], sum[:])
		if _, err := fmt.Fprintf(w, "  %d of %d bits differ from md4(%q)\n", dist, 8*crypto.MD4Size, msgs[0]); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return nil
	}
	opts := &slog.HandlerOptions{Level: slog.LevelDebug}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

type reporter interface {
	result(run int, r search.Result, expected float64) error
	mean(prefix int, probes, expected float64) error
	flush() error
}

type tableReporter struct {
	tw *tabwriter.Writer
}

func newTableReporter(w io.Writer) *tableReporter {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "run\tbits\tprobes\texpected\tfirst\tfirst md4\tsecond\tsecond md4")
	return &tableReporter{tw: tw}
}

func (t *tableReporter) result(run int, r search.Result, expected float64) error {
	_, err := fmt.Fprintf(t.tw, "%d\t%d\t%d\t%.0f\t%q\t%s\t%q\t%s\n",
		run, r.Bits, r.Probes, expected, r.First, r.FirstHash, r.Second, r.SecondHash)
	return err
}

func (t *tableReporter) mean(prefix int, probes, expected float64) error {
	_, err := fmt.Fprintf(t.tw, "mean\t%d\t%.1f\t%.0f\t\t\t\t\n", 4*prefix, probes, expected)
	return err
}

func (t *tableReporter) flush() error { return t.tw.Flush() }

type jsonReporter struct {
	enc *json.Encoder
}

type jsonResult struct {
	Run int `json:"run"`
	search.Result
	Expected float64 `json:"expected"`
}

type jsonMean struct {
	Prefix     int     `json:"prefix"`
	Bits       int     `json:"bits"`
	MeanProbes float64 `json:"meanProbes"`
	Expected   float64 `json:"expected"`
}

func (j *jsonReporter) result(run int, r search.Result, expected float64) error {
	return j.enc.Encode(jsonResult{Run: run, Result: r, Expected: expected})
}

func (j *jsonReporter) mean(prefix int, probes, expected float64) error {
	return j.enc.Encode(jsonMean{Prefix: prefix, Bits: 4 * prefix, MeanProbes: probes, Expected: expected})
}

func (j *jsonReporter) flush() error { return nil }
