package main

import (
	"flag"
	"hash/maphash"
	"io"
	"math/rand/v2"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/nfrolov/sweeper/internal/adaptive"
	"github.com/nfrolov/sweeper/internal/config"
	"github.com/nfrolov/sweeper/internal/mines"
	"github.com/nfrolov/sweeper/internal/tui"
)

var (
	log = logrus.New()

	difficulty string
)

func init() {
	const (
		defaultDifficulty = "medium"
		usage             = "difficulty preset (easy, medium, hard) or custom " +
			`geometry like "width=30&height=16&mine_count=99"`
	)
	flag.StringVar(&difficulty, "difficulty", defaultDifficulty, usage)
	flag.StringVar(&difficulty, "d", defaultDifficulty, usage+" (shorthand)")
}

// setupLogging routes core logs away from the terminal the TUI owns:
// into a rotating file when one is configured, otherwise nowhere.
func setupLogging() {
	logLevel := logrus.InfoLevel
	if config.Development() {
		logLevel = logrus.DebugLevel
	}

	for _, l := range []*logrus.Logger{mines.Log, adaptive.Log} {
		l.SetLevel(logLevel)
		l.SetOutput(io.Discard)
	}

	if path := config.LogFile(); path != "" {
		hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
			Filename:   path,
			MaxSize:    10, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Level:      logLevel,
			Formatter:  &logrus.JSONFormatter{},
		})
		if err != nil {
			log.Fatal("unable to open log file: ", err)
		}
		mines.Log.AddHook(hook)
		adaptive.Log.AddHook(hook)
	}

	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func main() {
	flag.Parse()
	setupLogging()

	params, err := config.ParseDifficulty(difficulty)
	if err != nil {
		log.Fatal(err)
	}

	model, err := tui.NewModel(params, createRand())
	if err != nil {
		log.Fatal(err)
	}

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
