package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/rawpix/internal/pipeline"
)

func newApplyCmd(s *settings) *cobra.Command {
	var (
		ops  string
		with string
	)

	cmd := &cobra.Command{
		Use:   "apply [input] [output]",
		Short: "Apply a chain of transforms",
		Long:  "Apply transforms in the order given by --ops, e.g. --ops mirror,grey,compress. A merge step uses the image given by --with as its second operand.",
		Args:  exactInputs(2, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := pipeline.ParseOps(ops)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidArguments)
			}
			if len(steps) == 0 {
				return newExitCodeError(fmt.Errorf("--ops must name at least one transform"), ExitCodeInvalidArguments)
			}

			var opts pipeline.Options
			if with != "" {
				if err := validFile(with); err != nil {
					return err
				}
				if opts.MergeWith, err = loadGrid(with); err != nil {
					return err
				}
			}

			g, err := loadGrid(args[0])
			if err != nil {
				return err
			}

			out, err := pipeline.Run(g, steps, opts)
			if err != nil {
				code := ExitCodeTransformError
				if errors.Is(err, pipeline.ErrMissingMergeInput) {
					code = ExitCodeInvalidArguments
				}
				return newExitCodeError(err, code)
			}
			return saveGrid(cmd, s, args[1], out)
		},
	}

	cmd.Flags().StringVar(&ops, "ops", "", "Comma separated transforms: mirror, grey, invert, merge, compress")
	cmd.Flags().StringVar(&with, "with", "", "Second image for merge steps")
	_ = cmd.MarkFlagRequired("ops")

	return cmd
}
