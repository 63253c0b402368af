package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sandevgo/uniadvisor/internal/config"
	"github.com/sandevgo/uniadvisor/internal/storage/sqlite"
	"github.com/sandevgo/uniadvisor/pkg/log"
	"github.com/spf13/cobra"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:           "seed",
	Short:         "Import university records into the catalog",
	Long:          `Reads a JSON array of university records and inserts them into the sqlite catalog.`,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)

		data, err := os.ReadFile(seedFile)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}

		var universities []sqlite.University
		if err := json.Unmarshal(data, &universities); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}

		appCfg := config.NewAppConfig(ctx)
		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return fmt.Errorf("open catalog: %w", err)
		}
		defer db.Close()

		repo := sqlite.NewUniversitiesRepo(db)
		for _, u := range universities {
			if _, err := repo.Insert(ctx, u); err != nil {
				return fmt.Errorf("insert %q: %w", u.Name, err)
			}
		}

		logger.Info().Int("count", len(universities)).Str("db", appCfg.GetDatabasePath()).Msg("catalog seeded")
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "universities.json", "path to the JSON seed file")
	rootCmd.AddCommand(seedCmd)
}
