package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
)

var (
	cfgFile  string
	dbPath   string
	logLevel string

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:   "tradebook",
	Short: "A personal trading journal with built-in performance analytics",
	Long: `Tradebook is a personal trading journal written in Go.

It provides tools for:
  - Logging trades by hand or from CSV imports
  - Deriving per-trade metrics (P/L, risk, reward, R-multiples)
  - Portfolio summaries: win rate, expectancy, profit factor, drawdown
  - Day/week/month and strategy/instrument breakdowns
  - Behavioral risk flags (low R:R, early exits, overtrading days)
  - CSV and org-mode exports`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Config file and environment both lose to explicit flags.
		if cfgFile != "" {
			if cfg, err := config.LoadFromFile(cfgFile); err != nil {
				log.WithError(err).Warn("ignoring config file")
			} else {
				if !cmd.Flags().Changed("db") {
					dbPath = cfg.Journal.DBPath
				}
				if !cmd.Flags().Changed("log-level") && cfg.Log.Level != "" {
					logLevel = cfg.Log.Level
				}
			}
		}
		_ = godotenv.Load()
		if !cmd.Flags().Changed("db") {
			if v := os.Getenv("TRADEBOOK_DB"); v != "" {
				dbPath = v
			}
		}

		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if lvl, err := logrus.ParseLevel(logLevel); err == nil {
			log.SetLevel(lvl)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().StringVarP(&dbPath, "db", "d", "./tradebook.sqlite", "path to sqlite journal DB")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
}

func openJournal() (*journal.SQLiteJournal, error) {
	return journal.NewSQLite(dbPath)
}
