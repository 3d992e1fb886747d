package main

import (
	"fmt"

	"github.com/ajroetker/hwysimd/hwy"
	"github.com/ajroetker/hwysimd/hwy/dtype"
	"github.com/spf13/cobra"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the data types and their lane counts on a target",
	Args:  cobra.NoArgs,
	RunE:  runTypes,
}

func init() {
	typesCmd.Flags().String("target", hwy.BaselineName, "target whose register width sets the lane counts")
	rootCmd.AddCommand(typesCmd)
}

func runTypes(cmd *cobra.Command, _ []string) error {
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
	reg := t.Module.Marshaller().Registry()
	w := cmd.OutOrStdout()
	for _, dt := range dtype.All() {
		fmt.Fprintf(w, "%-8s %-13s lane=%d lanes=%d\n", dt, dt.Class(), dt.LaneSize(), reg.NLanes(dt))
	}
	return nil
}
