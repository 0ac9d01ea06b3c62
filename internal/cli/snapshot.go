package cli

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/iburimskiy/hexfield/internal/frameloop"
	"github.com/iburimskiy/hexfield/internal/hexfield"
	"github.com/iburimskiy/hexfield/internal/raster"
)

var (
	snapOut      string
	snapFrames   int
	snapFPS      int
	snapPointerX float64
	snapPointerY float64
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Render the field without a window and save the last frame as PNG",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if snapFrames < 1 {
			return fmt.Errorf("--frames must be at least 1, got %d", snapFrames)
		}
		if snapFPS < 0 {
			return fmt.Errorf("--fps must not be negative, got %d", snapFPS)
		}

		a := hexfield.New(rand.New(rand.NewSource(seedOrClock(cfg.Seed))), palette, themes.IsDark)
		a.Configure(cfg.Width, cfg.Height)
		a.OnPointerMove(snapPointerX, snapPointerY)

		bg := palette.Background(themes.IsDark())
		s := raster.New(cfg.Width, cfg.Height)

		var loop *frameloop.Loop
		loop = frameloop.New(func() {
			s.Clear(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 255})
			a.RenderFrame(s)
			if loop.Frames()+1 >= uint64(snapFrames) {
				loop.Stop()
			}
		})

		ticks, stop := tickSource(snapFPS)
		defer stop()
		if err := loop.Run(cmd.Context(), ticks); err != nil && !errors.Is(err, frameloop.ErrStopped) {
			return err
		}
		a.Stop()

		if s.Empty() {
			log.Warn().Int("width", cfg.Width).Int("height", cfg.Height).Msg("empty viewport, snapshot skipped")
			fmt.Fprintf(cmd.OutOrStdout(), "skipped %s (%dx%d viewport is empty)\n", snapOut, cfg.Width, cfg.Height)
			return nil
		}
		if err := s.SavePNG(snapOut); err != nil {
			return err
		}
		log.Info().Str("path", snapOut).Uint64("frames", loop.Frames()).
			Int("hexagons", s.Filled()).Msg("snapshot saved")
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d, %d hexagons, %d frames)\n",
			snapOut, cfg.Width, cfg.Height, s.Filled(), loop.Frames())
		return nil
	},
}

// tickSource paces frames at fps, or as fast as possible when fps is 0.
func tickSource(fps int) (<-chan time.Time, func()) {
	if fps > 0 {
		t := time.NewTicker(time.Second / time.Duration(fps))
		return t.C, t.Stop
	}
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan time.Time)
	go func() {
		for {
			select {
			case ch <- time.Now():
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch, cancel
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapOut, "out", "o", "hexfield.png", "output PNG path")
	snapshotCmd.Flags().IntVar(&snapFrames, "frames", 60, "frames to simulate before saving")
	snapshotCmd.Flags().IntVar(&snapFPS, "fps", 0, "frame rate (0 renders as fast as possible)")
	snapshotCmd.Flags().Float64Var(&snapPointerX, "pointer-x", float64(0), "pointer x for parallax")
	snapshotCmd.Flags().Float64Var(&snapPointerY, "pointer-y", float64(0), "pointer y for parallax")
}
