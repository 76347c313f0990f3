// guessword-tui plays Guess The Word in the terminal.
// Usage: guessword-tui [--version] [--no-save] [--answer <word>]
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessword/assets"
	"github.com/robalobadob/guessword/internal/config"
	"github.com/robalobadob/guessword/internal/db"
	"github.com/robalobadob/guessword/internal/game"
	"github.com/robalobadob/guessword/internal/logging"
	"github.com/robalobadob/guessword/internal/results"
	"github.com/robalobadob/guessword/internal/tui"
	"github.com/robalobadob/guessword/internal/words"
)

// Set via -ldflags at build time.
var version = "dev"

const localOwner = "local"

func main() {
	save := true
	var answer string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("guessword-tui %s\n", version)
			return
		case "--no-save":
			save = false
		case "--answer":
			if i+1 >= len(args) {
				fmt.Fprintf(os.Stderr, "--answer requires a word\n")
				os.Exit(1)
			}
			i++
			answer = args[i]
		default:
			fmt.Fprintf(os.Stderr, "Usage: guessword-tui [--version] [--no-save] [--answer <word>]\n")
			os.Exit(1)
		}
	}

	cfg := config.Load()

	// The alternate screen owns stdout, so logs go to a file next to the database.
	logPath := filepath.Join(filepath.Dir(cfg.DBPath), "guessword-tui.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err == nil {
		if f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
			defer f.Close()
			logging.SetupWriter(f, cfg.LogLevel, false)
		}
	}

	var src words.Source = assets.Embedded{}
	if cfg.FullWordsFile != "" {
		src = words.FileSource{FullPath: cfg.FullWordsFile, CommonPath: cfg.CommonWordsFile}
	}
	ws := words.Load(cfg.WordLength, src, nil)
	if answer != "" && !ws.IsAcceptable(answer) {
		fmt.Fprintf(os.Stderr, "%q is not in the word list\n", answer)
		os.Exit(1)
	}

	opts := []tui.Option{tui.WithAnswer(answer)}
	if save {
		sqlDB, err := db.Open(cfg.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
			os.Exit(1)
		}
		defer sqlDB.Close()
		if err := db.Migrate(context.Background(), sqlDB); err != nil {
			fmt.Fprintf(os.Stderr, "Error migrating database: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, tui.WithRecorder(results.NewStore(sqlDB), localOwner))
	}

	m, err := tui.New(ws, game.Config{WordLength: cfg.WordLength, MaxAttempts: cfg.MaxAttempts}, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting game: %v\n", err)
		os.Exit(1)
	}
	if err := tui.Run(m); err != nil {
		log.Error().Err(err).Msg("tui exited")
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
