package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/alipala/mytacoai-mobile/internal/bank"
	"github.com/alipala/mytacoai-mobile/internal/bot"
	"github.com/alipala/mytacoai-mobile/internal/client"
	"github.com/alipala/mytacoai-mobile/internal/config"
	"github.com/alipala/mytacoai-mobile/internal/repository"
	"github.com/alipala/mytacoai-mobile/internal/service"
	"github.com/alipala/mytacoai-mobile/internal/storage/db"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"go.uber.org/zap"
)

func setupLogger(env string) *zap.Logger {
	var logger *zap.Logger
	if env == "development" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	db       *sqlx.DB
	services *service.Service
}

func initApp() (*app, error) {
	// A local .env is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed load .env: %w", err)
	}

	cfg, err := config.Init()
	if err != nil {
		return nil, fmt.Errorf("failed load config: %w", err)
	}

	logger := setupLogger(cfg.Env)

	conn, err := db.InitDB(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed init db: %w", err)
	}

	repos := repository.NewRepository(conn, cfg.Storage.SessionKey)
	clients := client.InitClients(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout)
	services := service.InitServices(clients, repos, cfg, logger)

	return &app{cfg: cfg, logger: logger, db: conn, services: services}, nil
}

func (a *app) close() {
	if !a.services.Wait(a.cfg.Hearts.AnalyticsTimeout) {
		a.logger.Warn("analytics calls still running at shutdown")
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn("failed to close db", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "challenge-engine",
		Short:         "Challenge sessions with hearts, combos and achievements",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(botCmd(), heartsCmd(), catalogCmd(), cacheClearCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run the Telegram bot",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer a.close()

			if a.cfg.Bot.Token == "" {
				return errors.New("BOT_TOKEN is not set")
			}

			open := func(ctx context.Context, userID string) (bot.SessionSI, error) {
				store := a.services.NewSessionStore(userID)
				if _, err := store.Restore(ctx); err != nil {
					return nil, err
				}
				return store, nil
			}

			handler, err := bot.NewTelegramAPI(a.cfg.Bot.Token, a.cfg.Env, a.services.HeartS, open, bot.PracticeDefaults{
				Language:      a.cfg.Bot.Language,
				Level:         a.cfg.Bot.Level,
				ChallengeType: a.cfg.Bot.ChallengeType,
			}, a.logger)
			if err != nil {
				return fmt.Errorf("failed init bot: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			handler.Start(ctx)
			a.logger.Info("bot stopped")
			return nil
		},
	}
}

func heartsCmd() *cobra.Command {
	var challengeType string

	cmd := &cobra.Command{
		Use:   "hearts",
		Short: "Show the heart pool for a challenge type",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.API.Timeout)
			defer cancel()

			pool, err := a.services.Status(ctx, challengeType)
			if err != nil {
				return err
			}

			if pool.IsUnlimited {
				fmt.Fprintln(cmd.OutOrStdout(), "hearts: unlimited")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "hearts: %d/%d shield: %t streak: %d\n",
				pool.CurrentHearts, pool.MaxHearts, pool.ShieldActive, pool.CurrentStreak)
			if pool.Refill.NextRefillAt != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "next refill: %s (%d min)\n",
					pool.Refill.NextRefillAt.Local().Format(time.Kitchen), pool.Refill.MinutesToNext)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&challengeType, "type", "t", "daily", "challenge type")
	return cmd
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List challenge counts per type, supported languages and offline levels",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer a.close()

			ctx, cancel := context.WithTimeout(cmd.Context(), a.cfg.API.Timeout)
			defer cancel()

			counts, err := a.services.Counts(ctx)
			if err != nil {
				return err
			}
			for challengeType, n := range counts {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d\n", challengeType, n)
			}

			langs, err := a.services.Languages(ctx)
			if err != nil {
				return err
			}
			for _, l := range langs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Code, l.Name)
			}

			levels := bank.Levels()
			sort.Strings(levels)
			fmt.Fprintf(cmd.OutOrStdout(), "offline levels: %s\n", strings.Join(levels, ", "))
			return nil
		},
	}
}

func cacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache-clear [level]",
		Short: "Drop cached challenge batches for a level, or all levels",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := initApp()
			if err != nil {
				return err
			}
			defer a.close()

			level := ""
			if len(args) > 0 {
				level = args[0]
			}
			if err := a.services.Invalidate(cmd.Context(), level); err != nil {
				return fmt.Errorf("failed to clear cache: %w", err)
			}
			a.logger.Info("challenge cache cleared", zap.String("level", level))
			return nil
		},
	}
}
