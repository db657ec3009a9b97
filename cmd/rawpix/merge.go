package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/rawpix"
)

func newMergeCmd(s *settings) *cobra.Command {
	return &cobra.Command{
		Use:   "merge [first] [second] [output]",
		Short: "Interleave two images row by row",
		Long:  "Merge two images into one as large as both. Even rows come from [first] and odd rows from [second] where both images have pixels; elsewhere the image that covers the cell is used, and cells covered by neither are white.",
		Args:  exactInputs(3, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadGrid(args[0])
			if err != nil {
				return err
			}
			b, err := loadGrid(args[1])
			if err != nil {
				return err
			}

			out, err := rawpix.Merge(a, b)
			if err != nil {
				return newExitCodeError(fmt.Errorf("merge failed: %w", err), ExitCodeTransformError)
			}
			return saveGrid(cmd, s, args[2], out)
		},
	}
}
