package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aretw0/wayline/internal/logging"
	"github.com/aretw0/wayline/pkg/adapters/memory"
	"github.com/aretw0/wayline/pkg/adapters/redis"
	"github.com/aretw0/wayline/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "wayline",
	Short: "Wayline is a navigation reconciliation engine",
	Long:  `Wayline diffs route states and replays the resulting push/pop/change actions against navigation handlers, one completed transition at a time.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("redis", "", "Redis address for the route store (optional)")
	rootCmd.PersistentFlags().String("redis-password", "", "Redis password")
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	viper.SetEnvPrefix("WAYLINE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("redis", rootCmd.PersistentFlags().Lookup("redis"))
	_ = viper.BindPFlag("redis-password", rootCmd.PersistentFlags().Lookup("redis-password"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return logging.New(level)
}

// newStore builds the route store from config: Redis when configured,
// otherwise an in-process store.
func newStore() ports.RouteStore {
	if addr := viper.GetString("redis"); addr != "" {
		return redis.New(addr, viper.GetString("redis-password"), 0)
	}
	return memory.NewStore()
}
