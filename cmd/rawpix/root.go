package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/rawpix"
	"github.com/gogpu/rawpix/codec"
)

// settings holds the persistent flags shared by all subcommands.
type settings struct {
	verbose bool
	quality int
	width   int
	height  int
	format  string
}

func newRootCmd() *cobra.Command {
	s := &settings{}

	rootCmd := &cobra.Command{
		Use:           "rawpix",
		Short:         "Mirror, grey, invert, merge and compress images",
		Long:          "rawpix loads images into RGB pixel grids, applies simple transforms and saves the result. The output format follows the output file extension unless --format is given.",
		Version:       rawpix.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if s.verbose {
				rawpix.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	rootCmd.SetOut(os.Stdout)

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&s.verbose, "verbose", "v", false, "Log debug information to stderr")
	flags.IntVarP(&s.quality, "quality", "q", codec.DefaultQuality, "Quality to use when the output is jpeg (1-100)")
	flags.IntVar(&s.width, "width", 0, "Resample the output to this width (requires --height)")
	flags.IntVar(&s.height, "height", 0, "Resample the output to this height (requires --width)")
	flags.StringVarP(&s.format, "format", "f", "", "Output format (png, jpeg, gif, bmp, tiff, rawpix); defaults to the output extension")

	for _, op := range singleOps {
		rootCmd.AddCommand(newSingleOpCmd(s, op))
	}
	rootCmd.AddCommand(newMergeCmd(s))
	rootCmd.AddCommand(newApplyCmd(s))
	rootCmd.AddCommand(newIdentifyCmd())

	return rootCmd
}

// encodeOptions turns the persistent flags into codec options.
func (s *settings) encodeOptions() ([]codec.Option, error) {
	opts := []codec.Option{codec.WithQuality(s.quality)}

	if s.format != "" {
		f, err := codec.ParseFormat(s.format)
		if err != nil {
			return nil, newExitCodeError(err, ExitCodeInvalidArguments)
		}
		opts = append(opts, codec.WithFormat(f))
	}

	if (s.width > 0) != (s.height > 0) {
		return nil, newExitCodeError(fmt.Errorf("--width and --height must be given together"), ExitCodeInvalidArguments)
	}
	if s.width > 0 {
		opts = append(opts, codec.WithSize(s.width, s.height))
	}
	return opts, nil
}

func validFile(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		return fmt.Errorf("could not open input file %s: %w", filename, newExitCodeError(err, ExitCodeInvalidInput))
	}
	return nil
}

// exactInputs validates n positional arguments whose first inputs name
// existing files.
func exactInputs(n, inputs int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return newExitCodeError(err, ExitCodeInvalidArguments)
		}
		for _, arg := range args[:inputs] {
			if err := validFile(arg); err != nil {
				return err
			}
		}
		return nil
	}
}

func loadGrid(path string) (rawpix.Grid, error) {
	g, err := codec.Load(path)
	if err != nil {
		return nil, newExitCodeError(fmt.Errorf("could not load %s: %w", path, err), ExitCodeInvalidInput)
	}
	return g, nil
}

func saveGrid(cmd *cobra.Command, s *settings, path string, g rawpix.Grid) error {
	opts, err := s.encodeOptions()
	if err != nil {
		return err
	}
	if err := codec.Save(path, g, opts...); err != nil {
		return newExitCodeError(fmt.Errorf("could not save %s: %w", path, err), ExitCodeInvalidOutput)
	}
	cmd.Printf("Wrote %dx%d image to %s\n", g.Width(), g.Height(), path)
	return nil
}
