package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"teeko/agent"
	"teeko/config"
	"teeko/engine"
	"teeko/game"
	"teeko/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	depth := flag.Int("depth", 0, "Search depth in plies (overrides config)")
	goroutines := flag.Int("goroutines", 0, "Goroutines evaluating root moves (overrides config)")
	seed := flag.Uint64("seed", 0, "Seed for the agent's piece assignment, 0 for a random one")
	selfPlay := flag.Bool("selfplay", false, "Let two agents play each other")
	logLevel := flag.String("log-level", "", "Log level (overrides config)")
	saveConfig := flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
	flag.Parse()

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *depth > 0 {
		cfg.Search.Depth = *depth
	}
	if *goroutines > 0 {
		cfg.Search.Goroutines = *goroutines
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	setupLogging(cfg.Log)

	if *saveConfig {
		if err := cfg.Save(); err != nil {
			log.Fatal().Err(err).Msg("cannot save config")
		}
		return
	}

	newSearcher := func() *searcher.Minimax {
		return searcher.NewMinimax(
			searcher.WithDepth(cfg.Search.Depth),
			searcher.WithGoroutines(cfg.Search.Goroutines),
			searcher.WithMetrics(),
		)
	}

	if *selfPlay {
		black := agent.New(agent.WithPiece(game.Black), agent.WithSearcher(newSearcher()))
		red := agent.New(agent.WithPiece(game.Red), agent.WithSearcher(newSearcher()))
		result, err := engine.NewLocalEngine(black, red).Run()
		printBoard(os.Stdout, result.Board)
		if err != nil {
			log.Fatal().Err(err).Msg("self-play aborted")
		}
		return
	}

	options := []agent.Option{agent.WithSearcher(newSearcher())}
	if *seed != 0 {
		options = append(options, agent.WithSeed(*seed))
	}
	ai := agent.New(options...)
	if err := play(os.Stdin, os.Stdout, ai); err != nil && !errors.Is(err, io.EOF) {
		log.Fatal().Err(err).Msg("game aborted")
	}
}

func setupLogging(cfg config.LogConfig) {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	if cfg.Pretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// play runs a game between the agent and a human reading moves from in.
// Black moves first.
func play(in io.Reader, out io.Writer, ai *agent.Agent) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintf(out, "Hello, this is Teeko. You play %s, I play %s.\n", ai.Opponent(), ai.Piece())

	turn := game.Black
	for ai.Winner() == game.Empty {
		board := ai.Board()
		printBoard(out, board)

		if turn == ai.Piece() {
			move, err := ai.FindMove()
			if err != nil {
				return err
			}
			ai.ApplyMove(move, ai.Piece())
			if move.Kind == game.RelocateMove {
				fmt.Fprintf(out, "%s moved from %s\n  to %s\n", ai.Piece(), move.From, move.To)
			} else {
				fmt.Fprintf(out, "%s moved at %s\n", ai.Piece(), move.To)
			}
		} else {
			fmt.Fprintf(out, "%s's turn\n", ai.Opponent())
			for {
				move, err := readMove(scanner, out, board)
				if err != nil {
					return err
				}
				if err := ai.ApplyOpponentMove(move); err != nil {
					fmt.Fprintln(out, err)
					continue
				}
				break
			}
		}
		turn = turn.Opponent()
	}

	printBoard(out, ai.Board())
	if ai.Winner() == ai.Piece() {
		fmt.Fprintln(out, "AI wins! Game over.")
	} else {
		fmt.Fprintln(out, "You win! Game over.")
	}
	return nil
}

func readMove(scanner *bufio.Scanner, out io.Writer, board game.Board) (game.Move, error) {
	drop, err := board.IsDropPhase()
	if err != nil {
		return game.Move{}, err
	}
	if drop {
		to, err := readCoord(scanner, out, "Move (e.g. B3): ")
		return game.Drop(to), err
	}
	from, err := readCoord(scanner, out, "Move from (e.g. B3): ")
	if err != nil {
		return game.Move{}, err
	}
	to, err := readCoord(scanner, out, "Move to (e.g. B3): ")
	return game.Relocate(from, to), err
}

// readCoord prompts until a valid coordinate is entered.
func readCoord(scanner *bufio.Scanner, out io.Writer, prompt string) (game.Coord, error) {
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return game.Coord{}, err
			}
			return game.Coord{}, io.EOF
		}
		c, err := game.ParseCoord(strings.TrimSpace(scanner.Text()))
		if err == nil {
			return c, nil
		}
	}
}

func printBoard(out io.Writer, board game.Board) {
	for row := range board {
		var line strings.Builder
		fmt.Fprintf(&line, "%d: ", row)
		for _, cell := range board[row] {
			line.WriteString(cell.String() + " ")
		}
		fmt.Fprintln(out, line.String())
	}
	fmt.Fprintln(out, "   A B C D E")
}
