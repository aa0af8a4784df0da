// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/imgpdf/internal/selection"
	"github.com/pdiddy/imgpdf/internal/ui"
)

// defaultOutput is where convert saves the PDF when --output is not set.
const defaultOutput = "output.pdf"

var convertCmd = &cobra.Command{
	Use:   "convert [images...]",
	Short: "Upload images and save the converted PDF",
	Long: `Convert sends the given images, in argument order, as one multipart
request to the conversion service and saves the returned PDF (./output.pdf
unless --output is set). Files are not checked locally; the service decides
which images it accepts.

Running convert without images reports "Please select at least one image
file." and sends nothing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.Display.Output == "" {
		cfg.Display.Output = defaultOutput
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	surface := ui.NewSurface(cfg.Display, cmd.OutOrStdout(), cmd.ErrOrStderr(), "")
	defer surface.Close()

	sel, err := selection.FromPaths(ctx, args)
	if err != nil {
		selectionFailed(surface, err)
		return errAttemptFailed
	}

	res := newController(cfg).Run(ctx, sel, surface.Notify)
	if err := surface.Apply(res); err != nil {
		logger.Error().Err(err).Str("attempt", res.AttemptID).Msg("saving artifact failed")
		return errAttemptFailed
	}
	if !res.Succeeded() {
		return errAttemptFailed
	}
	return nil
}
