package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/benkyo/doushi-api/internal/config"
	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/platform/logger"
	"github.com/benkyo/doushi-api/internal/platform/postgres"
	"github.com/benkyo/doushi-api/internal/service"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/spf13/cobra"
)

// seedEntry is one verb in the seed file.
type seedEntry struct {
	Kanji        string               `json:"kanji"`
	Kana         string               `json:"kana"`
	Romaji       string               `json:"romaji"`
	Class        string               `json:"class"`
	Meaning      string               `json:"meaning"`
	Frequency    string               `json:"frequency"`
	Transitivity string               `json:"transitivity"`
	Tags         []string             `json:"tags"`
	Examples     []domain.VerbExample `json:"examples"`
}

var seedCmd = &cobra.Command{
	Use:   "seed <verbs.json>",
	Short: "Load a verb catalog file into the database",
	Long: `Reads a JSON array of verbs and inserts each into the catalog.
Entries whose kana reading is already cataloged are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		log, err := logger.Setup(cfg.Server)
		if err != nil {
			return fmt.Errorf("failed to set up logger: %w", err)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read seed file: %w", err)
		}

		var entries []seedEntry
		if err := json.Unmarshal(data, &entries); err != nil {
			return fmt.Errorf("failed to parse seed file: %w", err)
		}

		db, err := openDatabase(cfg)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		verbService := service.NewVerbService(db, postgres.NewVerbStore(db, log), log)

		var created, skipped int
		for _, entry := range entries {
			verb, err := domain.NewVerb(entry.Kanji, entry.Kana, entry.Romaji,
				domain.VerbClass(entry.Class), entry.Meaning)
			if err != nil {
				return fmt.Errorf("invalid seed entry %q: %w", entry.Kana, err)
			}
			verb.Frequency = entry.Frequency
			verb.Transitivity = entry.Transitivity
			verb.Tags = entry.Tags
			verb.Examples = entry.Examples
			if err := verb.Validate(); err != nil {
				return fmt.Errorf("invalid seed entry %q: %w", entry.Kana, err)
			}

			if err := verbService.CreateVerb(ctx, verb); err != nil {
				if store.IsDuplicateError(err) {
					skipped++
					continue
				}
				return fmt.Errorf("failed to seed %q: %w", entry.Kana, err)
			}
			created++
		}

		cmd.Printf("seeded %d verbs (%d already cataloged)\n", created, skipped)
		return nil
	},
}
