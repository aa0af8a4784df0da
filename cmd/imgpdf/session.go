// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/pdiddy/imgpdf/internal/convert"
	"github.com/pdiddy/imgpdf/internal/selection"
	"github.com/pdiddy/imgpdf/internal/ui"
	"github.com/pdiddy/imgpdf/pkg/types"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Run one attempt per line of stdin",
	Long: `Session reads stdin line by line. Each line is one attempt whose
whitespace-separated fields are image paths; a blank line is an attempt with
no images. A new line cancels an attempt that is still running, and only the
latest attempt updates the status and download.

Without --output each PDF goes to a temporary file that is removed when a
newer PDF replaces it and when the session ends.

Piped input is not a batch: lines arrive faster than the service answers,
so each one cancels the one before it and usually only the last line is
converted. Run convert once per PDF to convert several sets.`,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
}

func runSession(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	surface := ui.NewSurface(cfg.Display, cmd.OutOrStdout(), cmd.ErrOrStderr(), "")
	defer surface.Close()

	slot := convert.NewSlot(newController(cfg).Run)
	apply := func(res types.ConversionResult) {
		if err := surface.Apply(res); err != nil {
			logger.Error().Err(err).Str("attempt", res.AttemptID).Msg("saving artifact failed")
		}
	}

	var pending []<-chan convert.Outcome
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		sel, err := selection.FromPaths(ctx, selection.ParseLine(scanner.Text()))
		if err != nil {
			slot.Cancel()
			selectionFailed(surface, err)
			continue
		}
		pending = append(pending, slot.Start(ctx, sel, surface.Notify, apply))
	}

	for _, ch := range pending {
		<-ch
	}
	return scanner.Err()
}
