// Command play runs the slide puzzle as an interactive terminal REPL.
// It loads a preset (or a saved grid snapshot), scrambles it, and reads
// move tokens from stdin until the puzzle is solved or the player quits.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tilegames/slide-puzzle/puzzle/config"
	"github.com/tilegames/slide-puzzle/puzzle/engine"
	"github.com/urfave/cli/v3"
)

func main() {
	cmd := &cli.Command{
		Name:  "play",
		Usage: "Play the slide puzzle in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "preset",
				Value: "classic",
				Usage: "Puzzle preset to play",
			},
			&cli.StringFlag{
				Name:  "config-dir",
				Value: "configs",
				Usage: "Directory containing puzzle presets",
			},
			&cli.StringFlag{
				Name:  "load",
				Usage: "Start from a saved grid snapshot instead of the solved grid",
			},
			&cli.IntFlag{
				Name:  "shuffle",
				Usage: "Scramble with this many random moves on start (0 uses the preset default, -1 skips)",
			},
			&cli.IntFlag{
				Name:  "seed",
				Usage: "Random seed for shuffling (0 uses the current time)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			eng, err := buildEngine(cmd.String("preset"), cmd.String("config-dir"), cmd.String("load"))
			if err != nil {
				return err
			}

			seed := int64(cmd.Int("seed"))
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			rng := rand.New(rand.NewSource(seed))

			if n := int(cmd.Int("shuffle")); n >= 0 && cmd.String("load") == "" {
				if n == 0 {
					n = eng.GetConfig().ShuffleLength
				}
				if n == 0 {
					n = engine.DefaultShuffleLength(eng.GetConfig().Rows, eng.GetConfig().Cols)
				}
				eng.Shuffle(n, rng)
			}

			return runREPL(eng, rng, os.Stdin, os.Stdout)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// buildEngine creates an engine from a preset, optionally replacing its grid
// with a saved snapshot.
func buildEngine(preset, configDir, loadPath string) (*engine.PuzzleEngine, error) {
	manager, err := config.NewManager(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load presets: %w", err)
	}

	cfg, err := manager.LoadConfig(preset)
	if err != nil {
		return nil, fmt.Errorf("failed to load preset %q: %w", preset, err)
	}

	eng, err := engine.NewEngine(cfg)
	if err != nil {
		return nil, err
	}

	if loadPath != "" {
		grid, err := engine.LoadGridFromFile(loadPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load snapshot: %w", err)
		}
		state := eng.GetState()
		state.Grid = grid
		if err := eng.SetState(state); err != nil {
			return nil, err
		}
	}

	return eng, nil
}

const helpText = `Commands:
  w / up       slide the tile below the blank up
  s / down     slide the tile above the blank down
  a / left     slide the tile right of the blank left
  d / right    slide the tile left of the blank right
  g <letters>  apply a whole sequence, e.g. g ssad
  r [n]        scramble with n random moves (preset default if omitted)
  p [path]     save the grid to a snapshot file
  l [path]     load the grid from a snapshot file
  m            show which moves currently apply
  h            show this help
  q            quit`

// runREPL drives the interactive loop. Input and output are injectable so
// tests can script a full play session.
func runREPL(eng *engine.PuzzleEngine, rng *rand.Rand, in io.Reader, out io.Writer) error {
	cfg := eng.GetConfig()

	fmt.Fprintln(out, cfg.Messages.Welcome)
	fmt.Fprintln(out)
	fmt.Fprintln(out, engine.RenderGrid(eng.GetState().Grid))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(out, engine.RenderGrid(eng.GetState().Grid))
			continue
		}

		fields := strings.Fields(line)
		command := strings.ToLower(fields[0])

		switch command {
		case "q", "quit", "exit":
			fmt.Fprintln(out, "Goodbye!")
			return scanner.Err()

		case "h", "help":
			fmt.Fprintln(out, helpText)
			continue

		case "m", "moves":
			fmt.Fprintf(out, "Possible moves: %s\n", strings.Join(eng.GetPossibleMoves(), ", "))
			continue

		case "g", "go":
			if len(fields) < 2 {
				fmt.Fprintln(out, "Usage: g <letters>, e.g. g ssad")
				continue
			}
			seq := strings.Join(fields[1:], "")
			applied := eng.ApplySequence(seq)
			fmt.Fprintf(out, "Applied %d of %d moves\n", applied, len(seq))

		case "r", "shuffle":
			length := cfg.ShuffleLength
			if length == 0 {
				length = engine.DefaultShuffleLength(cfg.Rows, cfg.Cols)
			}
			if len(fields) > 1 {
				if n, err := strconv.Atoi(fields[1]); err == nil && n > 0 {
					length = n
				}
			}
			eng.Shuffle(length, rng)
			if cfg.Messages.Shuffled != "" {
				fmt.Fprintf(out, cfg.Messages.Shuffled+"\n", length)
			}

		case "p", "save":
			path := engine.DefaultSaveFile
			if len(fields) > 1 {
				path = fields[1]
			}
			if err := engine.SaveGridToFile(eng.GetState().Grid, path); err != nil {
				fmt.Fprintf(out, "Save failed: %v\n", err)
				continue
			}
			if cfg.Messages.Saved != "" {
				fmt.Fprintf(out, cfg.Messages.Saved+"\n", path)
			}

		case "l", "load":
			path := engine.DefaultSaveFile
			if len(fields) > 1 {
				path = fields[1]
			}
			grid, err := engine.LoadGridFromFile(path)
			if err != nil {
				fmt.Fprintf(out, "Load failed: %v\n", err)
				continue
			}
			state := eng.GetState()
			state.Grid = grid
			if err := eng.SetState(state); err != nil {
				fmt.Fprintf(out, "Load failed: %v\n", err)
				continue
			}
			fmt.Fprintf(out, "Loaded %dx%d grid from %s\n", grid.Rows(), grid.Cols(), path)

		default:
			if !eng.Move(command) {
				if _, ok := engine.ParseToken(command); ok {
					if cfg.Messages.MoveIgnored != "" {
						fmt.Fprintln(out, cfg.Messages.MoveIgnored)
					}
				} else {
					fmt.Fprintf(out, "Unknown command %q (h for help)\n", command)
					continue
				}
			}
		}

		fmt.Fprintln(out, engine.RenderGrid(eng.GetState().Grid))

		if eng.IsSolved() {
			fmt.Fprintln(out, cfg.Messages.Solved)
			return scanner.Err()
		}
	}

	return scanner.Err()
}
