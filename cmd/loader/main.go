// loader is the back-office CLI: schema bootstrap, CSV unit imports and
// operator account creation.
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/myrp-alexandre/ubsvoce/internal/adapter/storage/postgres"
	"github.com/myrp-alexandre/ubsvoce/internal/config"
	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
	"github.com/myrp-alexandre/ubsvoce/internal/core/port"
	"github.com/myrp-alexandre/ubsvoce/internal/core/service"
)

var dbURL string

func main() {
	root := &cobra.Command{
		Use:   "loader",
		Short: "Manage the ubsvoce database: migrate schema, import units, create operators",
	}
	root.PersistentFlags().StringVar(&dbURL, "db-url", "", "postgres connection string (defaults to DB_URL)")

	root.AddCommand(migrateCmd(), unitsCmd(), operatorCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func connect(ctx context.Context) (*pgxpool.Pool, error) {
	url := dbURL
	if url == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		url = cfg.DBUrl
	}
	if url == "" {
		return nil, errors.New("no database url configured, pass --db-url or set DB_URL")
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create tables and indexes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			if _, err := pool.Exec(ctx, postgres.Schema); err != nil {
				return err
			}
			fmt.Println("schema applied")
			return nil
		},
	}
}

func unitsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "units <csv-file>",
		Short: "Import units from a CSV (name,address,phone,lat,lng)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			params, err := readUnitsCSV(args[0])
			if err != nil {
				return err
			}

			store := postgres.NewStore(pool)
			// Single transaction so a broken file imports nothing.
			err = store.ExecTx(ctx, func(q postgres.Querier) error {
				for _, p := range params {
					if _, err := q.CreateUnit(ctx, p); err != nil {
						return fmt.Errorf("insert %q: %w", p.Name, err)
					}
				}
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Printf("imported %d units\n", len(params))
			return nil
		},
	}
}

func readUnitsCSV(path string) ([]port.CreateUnitParams, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 5

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	var params []port.CreateUnitParams
	for i, rec := range records {
		lat, latErr := strconv.ParseFloat(rec[3], 64)
		lng, lngErr := strconv.ParseFloat(rec[4], 64)
		if latErr != nil || lngErr != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("line %d: bad coordinates %q,%q", i+1, rec[3], rec[4])
		}

		params = append(params, port.CreateUnitParams{
			Name:     rec[0],
			Address:  rec[1],
			Phone:    rec[2],
			Location: domain.Point{Lat: lat, Lng: lng},
		})
	}
	return params, nil
}

func operatorCmd() *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "operator",
		Short: "Create a back-office operator account",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := connect(ctx)
			if err != nil {
				return err
			}
			defer pool.Close()

			hash, err := service.NewAuthService("").HashPassword(password)
			if err != nil {
				return err
			}

			store := postgres.NewStore(pool)
			op, err := store.CreateOperator(ctx, name, email, hash)
			if err != nil {
				return err
			}

			fmt.Printf("created operator %s (%s)\n", op.Email, op.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "operator name")
	cmd.Flags().StringVar(&email, "email", "", "operator email")
	cmd.Flags().StringVar(&password, "password", "", "operator password")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("email")
	cmd.MarkFlagRequired("password")

	return cmd
}
