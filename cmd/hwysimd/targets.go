package main

import (
	"fmt"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/ajroetker/hwysimd/hwy/contrib/intrin"
	"github.com/ajroetker/hwysimd/hwy/contrib/simdtest"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	supportedColor   = color.New(color.FgGreen, color.Bold)
	unsupportedColor = color.New(color.FgYellow)
	emulatedColor    = color.New(color.FgCyan)
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List the dispatch targets of this machine",
	Args:  cobra.NoArgs,
	RunE:  runTargets,
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}

// target is one entry of the target list with its module, if any.
type target struct {
	hwy.Target
	Module   *bridge.Module
	Emulated bool
}

// loadTargets builds the reference modules in dispatch order, baseline
// last. Unsupported targets get a module only when emulate is set.
func loadTargets(emulate bool) ([]target, error) {
	mods, err := simdtest.Load(intrin.NewModule)
	if err != nil {
		return nil, err
	}
	all := append(hwy.DispatchTargets(), hwy.Baseline())
	out := make([]target, 0, len(all))
	for _, t := range all {
		name := t.Name()
		tgt := target{Target: t, Module: mods[name]}
		if tgt.Module == nil && emulate {
			if tgt.Module, err = intrin.NewModule(t); err != nil {
				return nil, fmt.Errorf("target %s: %w", name, err)
			}
			tgt.Emulated = true
			bridge.Logger().Debug("emulating target", zap.String("target", name))
		}
		out = append(out, tgt)
	}
	return out, nil
}

// findTarget returns the target called name. Targets without a module are
// reported as unsupported.
func findTarget(targets []target, name string) (target, error) {
	t, ok := lo.Find(targets, func(t target) bool {
		return t.ID == name || t.Name() == name
	})
	if !ok {
		names := lo.Map(targets, func(t target, _ int) string { return t.Name() })
		return target{}, fmt.Errorf("unknown target %q (have %v)", name, names)
	}
	if t.Module == nil {
		return target{}, fmt.Errorf("target %q isn't supported by current machine (try --emulate)", name)
	}
	return t, nil
}

// isCurrent reports whether t runs at the level and width this process
// selected at start-up.
func (t target) isCurrent() bool {
	return t.Level == hwy.CurrentLevel() && t.Bytes == hwy.CurrentWidth()
}

func emulateFlag(cmd *cobra.Command) (bool, error) {
	emulate, err := cmd.Flags().GetBool("emulate")
	if err != nil {
		return false, fmt.Errorf("failed to get emulate flag: %w", err)
	}
	return emulate, nil
}

func runTargets(cmd *cobra.Command, _ []string) error {
	emulate, err := emulateFlag(cmd)
	if err != nil {
		return err
	}
	targets, err := loadTargets(emulate)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "current: level=%s width=%d\n", hwy.CurrentLevel(), hwy.CurrentWidth())
	for _, t := range targets {
		marker := " "
		if t.Module != nil && !t.Emulated && t.isCurrent() {
			marker = "*"
		}
		status := supportedColor.Sprint("supported")
		switch {
		case t.Emulated:
			status = emulatedColor.Sprint("emulated")
		case t.Module == nil:
			status = unsupportedColor.Sprint("unsupported")
		}
		fmt.Fprintf(w, "%s %-12s %-11s width=%-3d level=%s", marker, t.Name(), status, t.Bytes, t.Level)
		if t.Module != nil {
			fmt.Fprintf(w, " simd=%d intrinsics=%d", t.Module.SIMD(), len(t.Module.Names()))
		}
		fmt.Fprintln(w)
	}
	return nil
}
