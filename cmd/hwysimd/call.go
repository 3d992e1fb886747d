package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/bridge"
	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/spf13/cobra"
)

var callCmd = &cobra.Command{
	Use:   "call [flags] intrinsic [arg...]",
	Short: "Call one intrinsic and print its result",
	Long: `Call binds TOML value literals to an intrinsic's signature and prints
the result and every argument the intrinsic writes back.

Arrays become vectors for vector parameters and lists for sequence
parameters; a scalar given for a vector parameter is broadcast to every
lane. Vector pairs and triples take an array of arrays.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().String("target", hwy.BaselineName, "target to call the intrinsic on")
	rootCmd.AddCommand(callCmd)
}

// parseLiteral decodes one TOML value literal.
func parseLiteral(s string) (any, error) {
	var doc struct {
		V any `toml:"v"`
	}
	if _, err := toml.Decode("v = "+s, &doc); err != nil {
		return nil, fmt.Errorf("invalid literal %q: %w", s, err)
	}
	return doc.V, nil
}

func parseLiterals(args []string) ([]any, error) {
	out := make([]any, len(args))
	for i, s := range args {
		v, err := parseLiteral(s)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// prepareArgs shapes raw values for the parameters of in. Values beyond
// the signature are passed through so the call reports the arity error.
func prepareArgs(mod *bridge.Module, in *bridge.Intrinsic, raw []any) ([]any, error) {
	m := mod.Marshaller()
	out := slices.Clone(raw)
	for i, t := range in.In {
		if i >= len(raw) {
			break
		}
		v, err := prepareArg(m, t, raw[i])
		if err != nil {
			return nil, fmt.Errorf("argument %d (%s): %w", i, t, err)
		}
		out[i] = v
	}
	return out, nil
}

func prepareArg(m *bridge.Marshaller, t dtype.DataType, v any) (any, error) {
	switch c := t.Class(); c {
	case dtype.ClassSequence:
		if xs, ok := v.([]any); ok {
			return bridge.List(slices.Clone(xs)), nil
		}
	case dtype.ClassVector:
		return vectorArg(m, t, v)
	case dtype.ClassVectorX2, dtype.ClassVectorX3:
		xs, ok := v.([]any)
		if !ok || len(xs) != c.Registers() {
			return v, nil
		}
		tup := make(bridge.Tuple, len(xs))
		for i, x := range xs {
			vec, err := vectorArg(m, t.ToVector(), x)
			if err != nil {
				return nil, err
			}
			tup[i] = vec
		}
		return tup, nil
	}
	return v, nil
}

func vectorArg(m *bridge.Marshaller, t dtype.DataType, v any) (any, error) {
	xs, ok := v.([]any)
	if !ok {
		xs = slices.Repeat([]any{v}, m.Registry().NLanes(t))
	}
	return m.NewVector(t, xs)
}

// formatValue prints a call result: tuples in parentheses, collections in
// brackets and vectors with their type name.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case *bridge.Vector:
		return x.Name() + x.String()
	case bridge.Tuple:
		return "(" + joinValues(x) + ")"
	case bridge.List:
		return "[" + joinValues(x) + "]"
	case []any:
		return "[" + joinValues(x) + "]"
	}
	return fmt.Sprint(v)
}

func joinValues(vs []any) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = formatValue(v)
	}
	return strings.Join(parts, ", ")
}

func runCall(cmd *cobra.Command, args []string) error {
	name, err := cmd.Flags().GetString("target")
	if err != nil {
		return fmt.Errorf("failed to get target flag: %w", err)
	}
	emulate, err := emulateFlag(cmd)
	if err != nil {
		return err
	}
	targets, err := loadTargets(emulate)
	if err != nil {
		return err
	}
	t, err := findTarget(targets, name)
	if err != nil {
		return err
	}
	in, ok := t.Module.Lookup(args[0])
	if !ok {
		return fmt.Errorf("%w: %q on %s", bridge.ErrNotFound, args[0], t.Name())
	}
	raw, err := parseLiterals(args[1:])
	if err != nil {
		return err
	}
	callArgs, err := prepareArgs(t.Module, in, raw)
	if err != nil {
		return err
	}
	out, err := t.Module.Call(in.Name, callArgs...)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s%s -> %s\n", in.Name, in.In, formatValue(out))
	for _, i := range in.WriteBack {
		fmt.Fprintf(w, "  arg %d = %s\n", i, formatValue(callArgs[i]))
	}
	return nil
}
