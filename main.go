package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"ataxx/config"
	"ataxx/engine"
	"ataxx/game"
	"ataxx/player"
	"ataxx/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	configPath = flag.String("config", "", "Path to a YAML game setup")
	depth      = flag.Int("depth", 0, "Search depth override")
	seed       = flag.Uint64("seed", 0, "Search tie-break seed override (0 picks one from the clock)")
	legend     = flag.Bool("legend", true, "Print row and column labels around the board")
	colorize   = flag.Bool("color", true, "Color the board output")
	verbose    = flag.Bool("v", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("load config")
		}
	}
	if *depth > 0 {
		cfg.Depth = *depth
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	board := game.NewBoard()
	for _, cr := range cfg.Blocks {
		if err := board.SetBlockText(cr); err != nil {
			log.Fatal().Err(err).Msg("apply block")
		}
	}
	board.SetNotifier(func(b *game.Board) {
		if *colorize {
			fmt.Println(b.RenderColor(*legend))
		} else {
			fmt.Println(b.Render(*legend))
		}
	})

	e := engine.NewLocal(board)
	red, err := newPlayer(cfg.Red, board, game.Red, e, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("set up red")
	}
	blue, err := newPlayer(cfg.Blue, board, game.Blue, e, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("set up blue")
	}

	winner, err := e.Run(red, blue)
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner == game.Empty {
		fmt.Println("Draw.")
	} else {
		fmt.Printf("%s wins.\n", winner)
	}
}

func newPlayer(kind string, board *game.Board, color game.PieceColor, reporter player.MoveReporter, cfg config.Config) (player.Player, error) {
	switch kind {
	case "", "ai":
		s := searcher.New(
			searcher.WithDepth(cfg.Depth),
			searcher.WithSeed(cfg.Seed),
			searcher.WithMetrics(),
		)
		return player.NewAI(board, color, reporter, s), nil
	case "manual":
		return player.NewScripted(os.Stdin, color, reporter), nil
	default:
		return nil, fmt.Errorf("unknown player kind %q", kind)
	}
}
