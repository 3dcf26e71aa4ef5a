// Command analyze prints quick, human-readable heuristics about the island
// configurations in a config directory. For each config it builds the
// island and summarizes the rings, the sinking ledger, where the boats and
// the reef are relative to each player's start, and the odds of every
// spinner outcome.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/wricardo/sinking-island/game/config"
	"github.com/wricardo/sinking-island/game/engine"
)

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "summarize island configurations",
		ArgsUsage: "[config-id ...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Aliases: []string{"d"},
				Value:   "configs",
				Usage:   "directory containing game configurations",
				Sources: cli.EnvVars("CONFIG_DIR"),
			},
			&cli.BoolFlag{
				Name:  "odds-only",
				Usage: "print only the spinner odds",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	manager, err := config.NewManager(cmd.String("config-dir"))
	if err != nil {
		return err
	}

	names := cmd.Args().Slice()
	if len(names) == 0 {
		infos, err := manager.ListConfigs()
		if err != nil {
			return err
		}
		for _, info := range infos {
			names = append(names, info.ConfigID)
		}
	}

	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	for _, name := range names {
		cfg, err := manager.LoadConfig(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "\n=== Analyzing %s ===\n", name)
		if cmd.Bool("odds-only") {
			printOdds(w, cfg.Spinner)
			continue
		}
		if err := analyzeConfig(w, cfg); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// analyzeConfig builds the island described by cfg and prints its summary
func analyzeConfig(w io.Writer, cfg *engine.GameConfig) error {
	eng, err := engine.NewEngine(cfg, nil, engine.WithSeed(1))
	if err != nil {
		return err
	}
	snap := eng.Snapshot()

	fmt.Fprintf(w, "Name: %s\n", cfg.Name)
	if cfg.Description != "" {
		fmt.Fprintf(w, "Description: %s\n", cfg.Description)
	}
	fmt.Fprintf(w, "Players: %d, pawns each: %d\n", cfg.Players, cfg.PawnsPerPlayer)
	fmt.Fprintf(w, "Hexes: %d, sinkable rings: %d\n", len(snap.Hexes), snap.IslandRadius)

	fmt.Fprintln(w, "\nRings:")
	for i, piece := range ringTypes(cfg.Pieces) {
		fmt.Fprintf(w, "  %d: %s\n", i, piece)
	}

	fmt.Fprintln(w, "\nSinking ledger (flipped first to last):")
	total := 0
	for _, piece := range snap.IslandPieces {
		fmt.Fprintf(w, "  %-10s %3d\n", piece.Type, piece.Count)
		total += piece.Count
	}
	fmt.Fprintf(w, "  %-10s %3d turns of sinking\n", "total", total)

	fmt.Fprintln(w, "\nCoast:")
	for _, t := range snap.Transports {
		fmt.Fprintf(w, "  %s %d at %s\n", t.Type, t.ID, t.Coordinates)
	}
	if len(snap.Transports) < cfg.Players {
		fmt.Fprintf(w, "  ⚠️ only %d boats for %d players\n", len(snap.Transports), cfg.Players)
	}
	fmt.Fprintf(w, "  coral hexes: %d\n", engine.CountPieceType(eng.Board(), engine.Coral))

	fmt.Fprintln(w, "\nStarts:")
	for _, p := range snap.Players {
		coral, dist, ok := engine.NearestCoral(eng.Board(), p.Start)
		if !ok {
			fmt.Fprintf(w, "  player %d at %s: ⚠️ no coral on the board\n", p.ID, p.Start)
			continue
		}
		fmt.Fprintf(w, "  player %d at %s: nearest coral %s, %d hexes (%d turns of movement)\n",
			p.ID, p.Start, coral, dist, turnsFor(dist))
	}

	fmt.Fprintln(w)
	printOdds(w, cfg.Spinner)
	return nil
}

// ringTypes expands piece layers into the piece type of each ring, centre
// first
func ringTypes(pieces []engine.PieceLayer) []engine.PieceType {
	var rings []engine.PieceType
	for _, piece := range pieces {
		for range piece.Layers {
			rings = append(rings, piece.Name)
		}
	}
	return rings
}

func turnsFor(distance int) int {
	return (distance + engine.MaxActionsPerTurn - 1) / engine.MaxActionsPerTurn
}

// Odds is the chance of one spinner outcome
type Odds struct {
	Section string
	Token   string
	Percent float64
}

// spinnerOdds lists the chance of every outcome. Sections are picked
// uniformly, then a token by weight.
func spinnerOdds(sections []engine.WheelSection) []Odds {
	layout := engine.NewWheelLayout(sections)
	names := layout.Sections()
	var odds []Odds
	for _, name := range names {
		chances := layout.ChancesFor(name)
		total := 0
		for _, c := range chances {
			total += c.Weight
		}
		for _, c := range chances {
			odds = append(odds, Odds{
				Section: name,
				Token:   c.Token,
				Percent: 100 * float64(c.Weight) / float64(total) / float64(len(names)),
			})
		}
	}
	return odds
}

func printOdds(w io.Writer, sections []engine.WheelSection) {
	fmt.Fprintln(w, "Spinner odds:")
	section := ""
	for _, o := range spinnerOdds(sections) {
		if o.Section != section {
			section = o.Section
			fmt.Fprintf(w, "  %s\n", section)
		}
		label := o.Token
		if label == engine.DiveMove {
			label = "dive"
		}
		fmt.Fprintf(w, "    %-4s %5.1f%% %s\n", label, o.Percent, strings.Repeat("#", int(o.Percent/2+0.5)))
	}
}
