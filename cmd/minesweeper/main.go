package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/WilsonHuang080705/minesweeper/internal/config"
	"github.com/WilsonHuang080705/minesweeper/internal/game"
	"github.com/WilsonHuang080705/minesweeper/internal/leaderboard"
	"github.com/WilsonHuang080705/minesweeper/internal/tui"
)

var (
	log = logrus.New()

	configPath string
	diffFlag   string
	cfg        config.Config
)

func init() {
	const (
		defaultConfigPath = "minesweeper.json"
		configUsage       = "config file path"
		diffUsage         = "difficulty (beginner, intermediate, expert)"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, configUsage)
	flag.StringVar(&configPath, "c", defaultConfigPath, configUsage+" (shorthand)")
	flag.StringVar(&diffFlag, "difficulty", "", diffUsage)
	flag.StringVar(&diffFlag, "d", "", diffUsage+" (shorthand)")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.Path,
		MaxSize:    cfg.Log.MaxSizeMb,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      logLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		log.Fatal("unable to set up log file: ", err)
	}
	log.AddHook(hook)
	// tcell owns the terminal, so nothing may be written to stdout/stderr
	// while the game runs.
	log.SetOutput(io.Discard)

	game.Log = log
	leaderboard.Log = log
	tui.Log = log
}

// pickDifficulty resolves the tier from flag, then config/env, then an
// interactive prompt before the screen is taken over.
func pickDifficulty() game.Difficulty {
	for _, s := range []string{diffFlag, cfg.Difficulty} {
		if s == "" {
			continue
		}
		if d, err := game.ParseDifficulty(s); err == nil {
			return d
		} else {
			log.Warn(err)
		}
	}
	return promptDifficulty(os.Stdin)
}

func promptDifficulty(in io.Reader) game.Difficulty {
	fmt.Println("Select difficulty:")
	for d := game.Beginner; d <= game.Expert; d++ {
		p := d.Params()
		fmt.Printf("%d. %s (%dx%d, %d mines)\n",
			int(d)+1, d, p.Width, p.Height, p.MineCount)
	}

	line, _ := bufio.NewReader(in).ReadString('\n')
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 {
		n = 1
	}
	if n > 3 {
		n = 3
	}
	return game.Difficulty(n - 1)
}

func newRand() *rand.Rand {
	if cfg.Seed != 0 {
		return rand.New(rand.NewPCG(cfg.Seed, 0))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func printStandings(lb *leaderboard.Leaderboard) {
	header := false
	for d := game.Beginner; d <= game.Expert; d++ {
		best, ok := lb.Best(d)
		if !ok {
			continue
		}
		if !header {
			fmt.Println("Best times this session:")
			header = true
		}
		fmt.Printf("  %-12s %ds\n", d, int(best.Playtime.Seconds()))
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	_ = godotenv.Load()
	if err := config.Read(configPath, &cfg); err != nil {
		log.Fatalf("unable to read config %s: %s", configPath, err.Error())
	}

	setupLogging()

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	difficulty := pickDifficulty()
	log.Info("difficulty = ", difficulty)

	lb := leaderboard.New()

	app, err := tui.New(lb, difficulty, newRand())
	if err != nil {
		log.Fatal("unable to set up screen: ", err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		defer app.Close()
		return app.Run(gCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("exit reason: %s\n", err)
	}

	printStandings(lb)
}
