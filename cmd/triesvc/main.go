package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	trie "github.com/sarthakjha889/go-prefix-trie"
	"github.com/sarthakjha889/go-prefix-trie/internal/api"
	"github.com/sarthakjha889/go-prefix-trie/internal/config"
	"github.com/sarthakjha889/go-prefix-trie/wordlist"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid config")
	}

	if cfg.Server.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	words := trie.New[int]()
	if !cfg.Trie.CaseSensitive {
		words.CaseInsensitive()
	}
	if cfg.Trie.Normalise {
		words.WithNormalisation()
	}

	if cfg.Dictionary.Path != "" {
		if err := loadDictionary(words, cfg); err != nil {
			logger.Fatal().Err(err).Str("path", cfg.Dictionary.Path).Msg("load dictionary")
		}
		logger.Info().Int("words", words.Len()).Str("path", cfg.Dictionary.Path).Msg("dictionary loaded")
	}

	server := api.NewServer(cfg.Server.Addr(), words, cfg.Complete.DefaultLimit, cfg.Complete.MaxLimit, logger)

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Server.Addr()).Msg("listening")
		serverErrors <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		logger.Fatal().Err(err).Msg("server error")
	case sig := <-stop:
		logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}

func loadDictionary(words *trie.Trie[int], cfg *config.Config) error {
	switch cfg.Dictionary.Format {
	case "yaml":
		entries, err := wordlist.ReadYAMLFile(cfg.Dictionary.Path)
		if err != nil {
			return err
		}
		wordlist.Populate(words, entries)
	default:
		list, err := wordlist.ReadFile(cfg.Dictionary.Path)
		if err != nil {
			return err
		}
		// Plain lists carry no ranks; fall back to word length.
		words.AddWordList(list, func(word string) int { return len(word) })
	}
	return nil
}
