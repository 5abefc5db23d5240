package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"equity_backend/internal/app/di"
	"equity_backend/internal/platform/config"
	"equity_backend/internal/platform/db"
	appredis "equity_backend/internal/platform/redis"
)

var (
	configPath string
	timeout    time.Duration
	noCache    bool
	table      string

	app *di.App
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load companies and daily charts from IEX into the database",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		gdb, err := db.Open(cfg.Database)
		if err != nil {
			return err
		}
		rdb, err := appredis.NewRedisClient(cmd.Context(), cfg.Redis)
		if err != nil {
			log.Println("[WARN] Redis unavailable. Running without cache:", err)
			rdb = nil
		}
		app = di.NewApp(cfg, gdb, rdb)
		return nil
	},
	SilenceUsage: true,
}

var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Fetch the symbol list and store the companies that are not yet saved",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		companies, _ := app.Symbols.ListSymbols(ctx)
		if len(companies) == 0 {
			return fmt.Errorf("no symbols returned by the provider")
		}
		saved, err := app.Symbols.ConfirmSymbols(ctx, companies)
		if err != nil {
			return err
		}
		log.Printf("symbols ok: listed=%d saved=%d", len(companies), saved)
		return nil
	},
}

var chartsCmd = &cobra.Command{
	Use:   "charts [SYMBOL...]",
	Short: "Refresh daily charts for the given symbols, or every stored company",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if noCache {
			if err := app.ChartCache.Invalidate(ctx, args...); err != nil {
				log.Println("[WARN] failed to invalidate chart cache:", err)
			}
		}

		summary, err := app.Ingest.RefreshAll(ctx, args)
		if err != nil {
			return err
		}
		log.Printf("charts ok: symbols=%d inserted=%d failed=%d", summary.Symbols, summary.Inserted, summary.Failed)
		return nil
	},
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete stored rows (all, Companies without charts, or Charts)",
	RunE: func(cmd *cobra.Command, args []string) error {
		counts, err := app.Maintenance.ClearTables(cmd.Context(), table)
		if err != nil {
			return err
		}
		log.Printf("clear ok: companies=%d charts=%d", counts.Companies, counts.Charts)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.PathFromEnv(), "Path to the YAML config file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Overall timeout for the command")
	chartsCmd.Flags().BoolVar(&noCache, "no-cache", false, "Drop cached charts of the given symbols before refreshing")
	clearCmd.Flags().StringVarP(&table, "table", "t", "all", "Scope to clear: all, Companies or Charts")

	rootCmd.AddCommand(symbolsCmd, chartsCmd, clearCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
