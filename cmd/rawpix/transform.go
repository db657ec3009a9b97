package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/rawpix/internal/pipeline"
)

// singleOpInfo describes a one-input subcommand.
type singleOpInfo struct {
	op    pipeline.Op
	short string
}

var singleOps = []singleOpInfo{
	{pipeline.OpMirror, "Reverse the pixels of every row"},
	{pipeline.OpGrey, "Replace every pixel with the average of its channels"},
	{pipeline.OpInvert, "Swap the largest and smallest channel of every pixel"},
	{pipeline.OpCompress, "Halve both dimensions by averaging 2x2 blocks"},
}

func newSingleOpCmd(s *settings, info singleOpInfo) *cobra.Command {
	return &cobra.Command{
		Use:   info.op.String() + " [input] [output]",
		Short: info.short,
		Args:  exactInputs(2, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGrid(args[0])
			if err != nil {
				return err
			}

			out, err := pipeline.Run(g, []pipeline.Op{info.op}, pipeline.Options{})
			if err != nil {
				return newExitCodeError(fmt.Errorf("%s failed: %w", info.op, err), ExitCodeTransformError)
			}
			return saveGrid(cmd, s, args[1], out)
		},
	}
}
