package main

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/ajroetker/hwysimd/hwy/contrib/workerpool"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

var runCmd = &cobra.Command{
	Use:   "run [flags] cases.toml",
	Short: "Run a file of intrinsic test cases on every target",
	Long: `Run executes every [[case]] of a TOML case file on each target that
has a module and reports PASS or FAIL per case and target.

	workers = 4

	[[case]]
	name = "add wraps"
	call = "add_u8"
	args = [255, 1]
	expect = 0

A scalar expect matches a vector result whose every lane equals it.`,
	Args: cobra.ExactArgs(1),
	RunE: runCases,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

type caseFile struct {
	Workers int64      `toml:"workers"`
	Cases   []testCase `toml:"case"`
}

type testCase struct {
	Name      string   `toml:"name"`
	Call      string   `toml:"call"`
	Args      []any    `toml:"args"`
	Expect    any      `toml:"expect"`
	Error     string   `toml:"error"`
	Writeback any      `toml:"writeback"`
	Targets   []string `toml:"targets"`
}

func loadCaseFile(path string) (caseFile, error) {
	var cf caseFile
	if _, err := toml.DecodeFile(path, &cf); err != nil {
		return caseFile{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	for i, c := range cf.Cases {
		if c.Call == "" {
			return caseFile{}, fmt.Errorf("%s: case %d has no call", path, i)
		}
		if c.Name == "" {
			cf.Cases[i].Name = c.Call
		}
	}
	return cf, nil
}

// runsOn reports whether c selects target t.
func (c testCase) runsOn(t target) bool {
	if len(c.Targets) == 0 {
		return true
	}
	return slices.Contains(c.Targets, t.Name()) || slices.Contains(c.Targets, t.ID)
}

var errMismatch = errors.New("mismatch")

// run calls the case on mod and checks every expectation.
func (c testCase) run(mod *bridge.Module) error {
	in, ok := mod.Lookup(c.Call)
	if !ok {
		return fmt.Errorf("%w: %q", bridge.ErrNotFound, c.Call)
	}
	args, err := prepareArgs(mod, in, c.Args)
	if err != nil {
		return err
	}
	out, err := mod.Call(c.Call, args...)
	if c.Error != "" {
		if err == nil {
			return fmt.Errorf("%w: expected error containing %q, got %s", errMismatch, c.Error, formatValue(out))
		}
		if !strings.Contains(err.Error(), c.Error) {
			return fmt.Errorf("%w: expected error containing %q, got %q", errMismatch, c.Error, err)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if c.Expect != nil && !matches(out, c.Expect) {
		return fmt.Errorf("%w: got %s, want %s", errMismatch, formatValue(out), formatValue(c.Expect))
	}
	if c.Writeback != nil {
		if len(args) == 0 {
			return fmt.Errorf("%w: no argument to check writeback on", errMismatch)
		}
		if !matches(args[0], c.Writeback) {
			return fmt.Errorf("%w: argument 0 is %s, want %s", errMismatch, formatValue(args[0]), formatValue(c.Writeback))
		}
	}
	return nil
}

// matches compares got with want. A scalar want matches a vector whose
// every lane equals it.
func matches(got, want any) bool {
	if v, ok := got.(*bridge.Vector); ok {
		if _, isSeq := want.([]any); !isSeq {
			for _, x := range v.All() {
				if !bridge.Equal(x, want) {
					return false
				}
			}
			return true
		}
	}
	return bridge.Equal(got, want)
}

type job struct {
	c      testCase
	target target
}

type outcome struct {
	job
	err error
}

func runCases(cmd *cobra.Command, args []string) error {
	cf, err := loadCaseFile(args[0])
	if err != nil {
		return err
	}
	workers, err := safecast.Conv[int](cf.Workers)
	if err != nil {
		return fmt.Errorf("invalid workers value %d: %w", cf.Workers, err)
	}
	emulate, err := emulateFlag(cmd)
	if err != nil {
		return err
	}
	targets, err := loadTargets(emulate)
	if err != nil {
		return err
	}
	targets = lo.Filter(targets, func(t target, _ int) bool { return t.Module != nil })

	jobs := lo.FlatMap(cf.Cases, func(c testCase, _ int) []job {
		return lo.FilterMap(targets, func(t target, _ int) (job, bool) {
			return job{c: c, target: t}, c.runsOn(t)
		})
	})

	pool := workerpool.New(workers)
	defer pool.Close()
	results := workerpool.Map(pool, len(jobs), func(i int) outcome {
		return outcome{job: jobs[i], err: jobs[i].c.run(jobs[i].target.Module)}
	})

	w := cmd.OutOrStdout()
	for _, r := range results {
		if r.err == nil {
			fmt.Fprintf(w, "%s %s [%s]\n", passColor.Sprint("PASS"), r.c.Name, r.target.Name())
			continue
		}
		fmt.Fprintf(w, "%s %s [%s]: %v\n", failColor.Sprint("FAIL"), r.c.Name, r.target.Name(), r.err)
	}
	failed := lo.CountBy(results, func(r outcome) bool { return r.err != nil })
	fmt.Fprintf(w, "%d passed, %d failed\n", len(results)-failed, failed)
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, len(results))
	}
	return nil
}
