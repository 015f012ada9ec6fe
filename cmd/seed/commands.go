package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/JaimeStill/storefront/internal/config"
	"github.com/JaimeStill/storefront/internal/migrations"
	"github.com/JaimeStill/storefront/pkg/database"
	"github.com/JaimeStill/storefront/pkg/logging"
)

// EnvDatabaseDSN overrides the connection URL read from configuration.
const EnvDatabaseDSN = "DATABASE_DSN"

type options struct {
	dsn     string
	file    string
	migrate bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	source := &catalogSource{}
	seeders := newRegistry(&CategorySeeder{source: source}, &ProductSeeder{source: source})

	root := &cobra.Command{
		Use:           "seed",
		Short:         "Populate the storefront catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			source.file = opts.file
		},
	}

	root.PersistentFlags().StringVar(&opts.dsn, "dsn", "", "postgres:// connection URL (default $"+EnvDatabaseDSN+" or config.toml)")
	root.PersistentFlags().StringVar(&opts.file, "file", "", "external YAML seed file (overrides embedded catalog)")
	root.PersistentFlags().BoolVar(&opts.migrate, "migrate", false, "apply schema migrations before seeding")

	root.AddCommand(listCmd(seeders))
	for _, s := range seeders.list() {
		root.AddCommand(seederCmd(opts, seeders, s))
	}
	root.AddCommand(allCmd(opts, seeders))

	return root
}

func listCmd(seeders *registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available seeders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printSeeders(cmd.OutOrStdout(), seeders)
			return nil
		},
	}
}

func seederCmd(opts *options, seeders *registry, s Seeder) *cobra.Command {
	return &cobra.Command{
		Use:   s.Name(),
		Short: s.Description(),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := execute(cmd, opts, seeders, s.Name()); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s seeded successfully\n", s.Name())
			return nil
		},
	}
}

func allCmd(opts *options, seeders *registry) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every seeder in one transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := execute(cmd, opts, seeders, seeders.names()...); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "all seeders completed successfully")
			return nil
		},
	}
}

func printSeeders(w io.Writer, seeders *registry) {
	fmt.Fprintln(w, "Available seeders:")
	for _, s := range seeders.list() {
		fmt.Fprintf(w, "  - %s: %s\n", s.Name(), s.Description())
	}
}

func execute(cmd *cobra.Command, opts *options, seeders *registry, names ...string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	dsn, err := resolveDSN(opts.dsn)
	if err != nil {
		return err
	}

	if opts.migrate {
		if err := database.Migrate(dsn, migrations.FS, logging.NewWithWriter(&logging.Config{Level: logging.LevelInfo}, cmd.ErrOrStderr())); err != nil {
			return err
		}
	}

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}

	return seeders.run(ctx, db, names...)
}

// resolveDSN prefers the flag, then the environment, then the service
// configuration.
func resolveDSN(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		return dsn, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("database connection required: use --dsn, %s or config.toml: %w", EnvDatabaseDSN, err)
	}
	return cfg.Database.URL(), nil
}
