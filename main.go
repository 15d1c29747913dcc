package main

import (
	"context"
	"fmt"
	"os"

	"MandelbrotBitmap/mandelbrot"
	"MandelbrotBitmap/misc"
	"MandelbrotBitmap/render"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/spf13/cobra"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelbrot",
		Short: "Render the Mandelbrot set to an uncompressed bitmap",
		Args:  cobra.ExactArgs(0),
		RunE:  runCmd,
		// errors are reported through the logger in main
		SilenceErrors: true,
	}

	return cmd
}

func runCmd(cmd *cobra.Command, _ []string) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	// Minimal keeps stdout down to the single diagnostic number
	logger := bslogger.NewLogger("Mandelbrot", bslogger.Minimal, nil)

	renderer, err := render.NewRenderer(mandelbrot.NewSettings(), cmd.ErrOrStderr(), logger)
	if err != nil {
		return err
	}

	result, err := renderer.Render()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), int64(result.Elapsed.Seconds()))

	return renderer.Save(result)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		logger := bslogger.NewLogger("Mandelbrot", bslogger.Minimal, nil)
		misc.CheckError(err, logger, misc.Fatal, "Rendering")
		os.Exit(1)
	}
}
