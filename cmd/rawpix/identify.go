package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/rawpix/codec"
)

func newIdentifyCmd() *cobra.Command {
	var lang string

	cmd := &cobra.Command{
		Use:   "identify [file]",
		Short: "Print image dimensions and format",
		Args:  exactInputs(1, 1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, err := language.Parse(lang)
			if err != nil {
				return newExitCodeError(fmt.Errorf("invalid --lang %q: %w", lang, err), ExitCodeInvalidArguments)
			}

			path := args[0]
			stat, err := os.Stat(path)
			if err != nil {
				return newExitCodeError(err, ExitCodeInvalidInput)
			}
			info, err := codec.Identify(path)
			if err != nil {
				return newExitCodeError(fmt.Errorf("could not identify %s: %w", path, err), ExitCodeInvalidInput)
			}

			p := message.NewPrinter(tag)
			w := cmd.OutOrStdout()
			p.Fprintf(w, "File:       %s\n", path)
			p.Fprintf(w, "Format:     %s\n", info.Format)
			p.Fprintf(w, "Dimensions: %d x %d\n", info.Width, info.Height)
			p.Fprintf(w, "Pixels:     %d\n", info.Width*info.Height)
			p.Fprintf(w, "File size:  %d bytes\n", stat.Size())
			return nil
		},
	}

	cmd.Flags().StringVar(&lang, "lang", "en", "Language tag used to format numbers")
	return cmd
}
