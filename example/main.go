package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/theflywheel/lptable"
	"github.com/theflywheel/lptable/internal/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("could not load the configuration")
	}
	if cfg.PrettyLogs {
		log.Logger = log.Output(zerolog.ConsoleWriter{
			Out: os.Stderr,
		})
	}
	zerolog.SetGlobalLevel(cfg.Level())

	opts, err := cfg.TableOptions(&log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("could not build the table options")
	}
	table, err := lptable.NewWithOptions(cfg.Capacity, opts)
	if err != nil {
		log.Fatal().Err(err).Msg("could not create the table")
	}
	log.Info().Int("capacity", table.Cap()).Str("hasher", cfg.Hasher).Msg("table created")

	insert := func(key, value string) {
		if err := table.Insert(key, value); err != nil {
			log.Error().Err(err).Str("key", key).Msg("insert rejected")
			return
		}
		log.Info().Str("key", key).Str("value", value).Int("len", table.Len()).Msg("inserted")
	}
	lookup := func(key string) {
		if value, ok := table.Get(key); ok {
			log.Info().Str("key", key).Str("value", value).Msg("found")
		} else {
			log.Info().Str("key", key).Msg("not found")
		}
	}

	insert("key1", "value1")
	lookup("key1")
	lookup("key2")

	// Update in place
	insert("key1", "v2")
	lookup("key1")

	// "1yek" is an anagram of "key1" and shares its home slot under the code point hasher
	insert("key2", "x")
	insert("1yek", "collides")
	lookup("1yek")

	table.Delete("key1")
	lookup("key1")
	lookup("1yek")
	lookup("key2")

	// The reserved tombstone marker is never a valid key
	insert(lptable.TombstoneKey, "nope")

	stats := table.Stats()
	log.Info().
		Int("len", stats.Len).
		Int("tombstones", stats.Tombstones).
		Int("free", stats.Free).
		Float64("load_factor", table.LoadFactor()).
		Msg("done")
}
