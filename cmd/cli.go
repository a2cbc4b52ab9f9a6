package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"distributor/internal/adapters/out/postgres"
	"distributor/internal/core/application/usecases/commands"
	"distributor/internal/seed"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// NewRootCommand builds the distributor CLI.
func NewRootCommand() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "distributor",
		Short:         "Back office of a water and gas distributor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "optional dotenv file read before the environment")

	root.AddCommand(
		newServeCommand(&envFile),
		newMigrateCommand(&envFile),
		newSeedCommand(&envFile),
		newHashPasswordCommand(),
	)
	return root
}

func newServeCommand(envFile *string) *cobra.Command {
	var migrate bool

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the scheduled jobs",
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			if migrate {
				if err = postgres.Migrate(db); err != nil {
					return err
				}
			}

			ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return serve(ctx, cfg, db, logger)
		},
	}
	c.Flags().BoolVar(&migrate, "migrate", true, "apply schema migrations before serving")
	return c
}

func serve(ctx context.Context, cfg Config, db *gorm.DB, logger *slog.Logger) error {
	app := NewCompositionRoot(cfg, db, logger)

	e, err := app.CreateWebServer(ctx)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	errCh := make(chan error, 1)
	go func() {
		logger.InfoContext(ctx, "HTTP server listening", "port", cfg.HTTPPort)
		errCh <- e.Start(fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort))
	}()

	select {
	case err = <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.InfoContext(context.Background(), "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func newMigrateCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			_, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return err
			}
			logger.InfoContext(c.Context(), "Schema is up to date")
			return nil
		},
	}
}

func newSeedCommand(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample customers, products, drivers and deliveries",
		Long: `Load the embedded sample data. Records are matched by customer email, product
name and driver name, so running the command again creates nothing new.`,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, logger, db, err := bootstrap(*envFile)
			if err != nil {
				return err
			}
			if err = postgres.Migrate(db); err != nil {
				return err
			}

			result, err := runSeed(c.Context(), NewCompositionRoot(cfg, db, logger))
			if err != nil {
				return err
			}

			fmt.Fprintf(c.OutOrStdout(), "customers: %d, products: %d, drivers: %d, deliveries: %d created\n",
				result.Customers, result.Products, result.Drivers, result.Deliveries)
			return nil
		},
	}
}

func runSeed(ctx context.Context, app CompositionRoot) (commands.SeedSampleDataResult, error) {
	fixtures, err := seed.Default()
	if err != nil {
		return commands.SeedSampleDataResult{}, err
	}
	seedCmd, err := fixtures.Command()
	if err != nil {
		return commands.SeedSampleDataResult{}, err
	}

	handler := app.CreateSeedSampleDataCommandHandler()
	return handler.Handle(ctx, seedCmd)
}

func newHashPasswordCommand() *cobra.Command {
	var cost int

	c := &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash to use as ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), cost)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.OutOrStdout(), string(hash))
			return nil
		},
	}
	c.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return c
}

func bootstrap(envFile string) (Config, *slog.Logger, *gorm.DB, error) {
	cfg, err := LoadConfig(envFile)
	if err != nil {
		return Config{}, nil, nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))

	db, err := postgres.Open(cfg.DSN(), cfg.GormLogLevel())
	if err != nil {
		return Config{}, nil, nil, err
	}
	return cfg, logger, db, nil
}
