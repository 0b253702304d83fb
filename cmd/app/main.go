package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"clinic/cmd"
	"clinic/internal/adapters/out/postgres"
	"clinic/internal/core/application/usecases/commands"
	"clinic/internal/docs"
	"clinic/internal/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "clinic",
		Short:         "Clinic appointment service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().String("env-file", ".env", "Path to a .env file; missing files are ignored")

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(createAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API and the reminder job",
		RunE: func(c *cobra.Command, _ []string) error {
			migrate, _ := c.Flags().GetBool("migrate")
			return withApp(c, func(ctx context.Context, cfg cmd.Config, db *gorm.DB, log *zap.Logger) error {
				if migrate {
					if err := postgres.Migrate(ctx, db, log); err != nil {
						return err
					}
				}
				return runServer(ctx, cfg, db, log)
			})
		},
	}
	c.Flags().Bool("migrate", true, "Migrate the schema before serving")
	return c
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(c *cobra.Command, _ []string) error {
			return withApp(c, func(ctx context.Context, _ cmd.Config, db *gorm.DB, log *zap.Logger) error {
				return postgres.Migrate(ctx, db, log)
			})
		},
	}
}

func createAdminCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account allowed to log in",
		RunE: func(c *cobra.Command, _ []string) error {
			name, _ := c.Flags().GetString("name")
			email, _ := c.Flags().GetString("email")
			password, _ := c.Flags().GetString("password")

			command, err := commands.NewCreateAdminCommand(name, email, password)
			if err != nil {
				return err
			}

			return withApp(c, func(ctx context.Context, cfg cmd.Config, db *gorm.DB, log *zap.Logger) error {
				app, err := cmd.NewCompositionRoot(cfg, db, log)
				if err != nil {
					return err
				}

				id, err := app.CreateCreateAdminCommandHandler().Handle(ctx, command)
				if err != nil {
					return err
				}

				log.Info("admin created", zap.Int32("id", id), zap.String("email", email))
				return nil
			})
		},
	}
	c.Flags().String("name", "", "Admin display name")
	c.Flags().String("email", "", "Admin e-mail, used to log in")
	c.Flags().String("password", "", "Admin password")
	_ = c.MarkFlagRequired("email")
	_ = c.MarkFlagRequired("password")
	return c
}

// withApp loads the configuration, builds the logger and opens the database
// for the duration of run. The context ends on SIGINT or SIGTERM.
func withApp(
	c *cobra.Command,
	run func(ctx context.Context, cfg cmd.Config, db *gorm.DB, log *zap.Logger) error,
) error {
	ctx, stop := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envFile, _ := c.Flags().GetString("env-file")
	cfg, err := cmd.LoadConfig(envFile)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := postgres.Open(ctx, cfg.Database())
	if err != nil {
		log.Error("database unavailable", zap.Error(err))
		return err
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			log.Warn("closing database", zap.Error(err))
		}
	}()

	return run(ctx, cfg, db, log)
}

func runServer(ctx context.Context, cfg cmd.Config, db *gorm.DB, log *zap.Logger) error {
	if err := docs.Register(ctx); err != nil {
		return err
	}

	app, err := cmd.NewCompositionRoot(cfg, db, log)
	if err != nil {
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}

	e := app.CreateHTTPServer()
	serverErr := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("address", cfg.Address()))
		if err := e.Start(cfg.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-serverErr:
		log.Error("http server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		log.Error("http server shutdown failed", zap.Error(shutdownErr))
	}
	jobManager.StopAll(shutdownCtx)
	log.Info("server stopped")

	return err
}
