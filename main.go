package main

import (
	"context"
	"net"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/guessword/assets"
	"github.com/robalobadob/guessword/internal/config"
	"github.com/robalobadob/guessword/internal/db"
	"github.com/robalobadob/guessword/internal/httpserver"
	"github.com/robalobadob/guessword/internal/logging"
	"github.com/robalobadob/guessword/internal/store"
	"github.com/robalobadob/guessword/internal/words"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogPretty)

	ws := words.Load(cfg.WordLength, wordSource(cfg), nil)
	candidates, acceptable := ws.Stats()
	if candidates == 0 {
		log.Fatal().Err(words.ErrEmptyCandidateList).Int("wordLength", cfg.WordLength).Msg("failed to load word lists")
	}
	log.Info().Int("candidates", candidates).Int("acceptable", acceptable).Msg("word lists loaded")

	sqlDB, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open db")
	}
	defer sqlDB.Close()
	if err := db.Migrate(context.Background(), sqlDB); err != nil {
		log.Fatal().Err(err).Msg("migrate")
	}

	srv := httpserver.New(cfg, ws, store.NewMemoryStore(), sqlDB)
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting guessword server")
	if err := srv.Start(net.JoinHostPort("", cfg.Port)); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

// wordSource prefers word files from the environment over the embedded lists.
func wordSource(cfg config.Config) words.Source {
	if cfg.FullWordsFile != "" {
		return words.FileSource{FullPath: cfg.FullWordsFile, CommonPath: cfg.CommonWordsFile}
	}
	return assets.Embedded{}
}
