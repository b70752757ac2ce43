package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/beka-birhanu/vinom-pathfinder/layout"
	"github.com/beka-birhanu/vinom-pathfinder/maze"
	"github.com/beka-birhanu/vinom-pathfinder/pathfinding"
	"github.com/beka-birhanu/vinom-pathfinder/playback"
	"github.com/spf13/cobra"
)

type runFlags struct {
	file       string
	aggressive bool
	strict     bool
	legacyWrap bool
	checked    bool
	animate    bool
	batch      int
	tick       time.Duration
}

type mazeFlags struct {
	width  int
	height int
	seed   int64
	name   string
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pathfind",
		Short:        "Search toroidal grid layouts",
		SilenceUsage: true,
	}
	root.AddCommand(newRunCmd(), newMazeCmd())
	return root
}

func newRunCmd() *cobra.Command {
	var flags runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search a YAML layout and print the finalized tiles",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSearch(cmd.Context(), cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "layout file")
	cmd.Flags().BoolVar(&flags.aggressive, "aggressive", false, "use aggressive cost growth")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "fail on a missing end or unknown start")
	cmd.Flags().BoolVar(&flags.legacyWrap, "legacy-wrap", false, "cross-pair wraparound thresholds")
	cmd.Flags().BoolVar(&flags.checked, "checked", false, "emit checked events")
	cmd.Flags().BoolVar(&flags.animate, "animate", false, "replay the search batch by batch")
	cmd.Flags().IntVar(&flags.batch, "batch", playback.DefaultBatchSize, "events per animation frame")
	cmd.Flags().DurationVar(&flags.tick, "tick", playback.DefaultTick, "delay between animation frames")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newMazeCmd() *cobra.Command {
	var flags mazeFlags
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a maze layout as YAML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeMaze(cmd.OutOrStdout(), flags)
		},
	}

	cmd.Flags().IntVar(&flags.width, "width", 5, "maze width in cells")
	cmd.Flags().IntVar(&flags.height, "height", 5, "maze height in cells")
	cmd.Flags().Int64Var(&flags.seed, "seed", 0, "random seed, 0 picks one from the clock")
	cmd.Flags().StringVar(&flags.name, "name", "maze", "layout name")
	return cmd
}

func runSearch(ctx context.Context, out io.Writer, flags runFlags) error {
	f, err := os.Open(flags.file)
	if err != nil {
		return err
	}
	defer f.Close()

	l, err := layout.Decode(f)
	if err != nil {
		return err
	}

	var options []pathfinding.Option
	if flags.strict {
		options = append(options, pathfinding.WithStrictEndpoints())
	}
	if flags.legacyWrap {
		options = append(options, pathfinding.WithLegacyWrapPairing())
	}
	if flags.checked {
		options = append(options, pathfinding.WithCheckedEvents())
	}

	engine, err := pathfinding.NewEngine(l.Dims, options...)
	if err != nil {
		return err
	}

	result, err := engine.Search(l.Tiles, l.StartID, flags.aggressive || l.Aggressive)
	if err != nil {
		return err
	}

	if flags.animate {
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
		defer stop()

		var shown []pathfinding.Event
		err := playback.Replay(ctx, result.Events, playback.Options{BatchSize: flags.batch, Tick: flags.tick}, func(batch []pathfinding.Event) {
			shown = append(shown, batch...)
			fmt.Fprintln(out, layout.Render(l, shown))
		})
		if err != nil {
			return err
		}
	} else {
		fmt.Fprint(out, layout.Render(l, result.Events))
	}

	fmt.Fprintf(out, "outcome: %s\nfinalized: %d\n", result.Outcome, result.Finalized)
	return nil
}

func writeMaze(out io.Writer, flags mazeFlags) error {
	seed := flags.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m, err := maze.New(flags.width, flags.height, rand.New(rand.NewSource(seed)))
	if err != nil {
		return err
	}

	return layout.FromTiles(flags.name, m.Dimensions(), m.Tiles()).Encode(out)
}
