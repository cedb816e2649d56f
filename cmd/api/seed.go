package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"epidash-service/internal/dashboard/adapters/mock"
	recordsRepoPg "epidash-service/internal/records/adapters/postgres"
	recordsUsecase "epidash-service/internal/records/core/usecase"
)

func newSeedCmd(configPath *string) *cobra.Command {
	var (
		count int
		seed  uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Generate mock records and store them in PostgreSQL",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Sync()

			if !cfg.Postgres.Enabled() {
				return fmt.Errorf("seed requires postgres.dsn (POSTGRES_DSN)")
			}
			if count <= 0 {
				return fmt.Errorf("--count must be positive")
			}

			ctx := cmd.Context()
			db, err := openDB(ctx, cfg.Postgres)
			if err != nil {
				return err
			}
			defer db.Close()

			uc := recordsUsecase.NewStoreRecordUseCase(recordsRepoPg.NewRecordRepository(recordsRepoPg.NewSQLDB(db)))

			start, end := mockRange(cfg)
			generated := mock.NewGenerator(seed).Generate(start, end, count)

			inputs := make([]recordsUsecase.StoreRecordInput, len(generated))
			for i, r := range generated {
				inputs[i] = recordsUsecase.StoreRecordInput{
					Date:       r.Date.String(),
					Region:     r.Region,
					Disease:    r.Disease,
					AgeGroup:   string(r.AgeGroup),
					Gender:     string(r.Gender),
					Cases:      r.Cases,
					Recoveries: r.Recoveries,
					Deaths:     r.Deaths,
				}
			}

			res, err := uc.BulkCreateRecords(ctx, recordsUsecase.BulkCreateRecordsInput{Records: inputs})
			if err != nil {
				return fmt.Errorf("seed records: %w", err)
			}

			log.Info("seed finished", "generated", len(generated), "created", res.Created, "duplicates", res.Duplicates)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1000, "Number of records to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Generator seed")
	return cmd
}
