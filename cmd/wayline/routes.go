package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List committed routes from the route store",
	Long:  `Reads the route store and prints where every known router instance currently sits. Requires a shared store (--redis).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("redis") == "" {
			return fmt.Errorf("routes requires a shared route store; set --redis or WAYLINE_REDIS")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Second)
		defer cancel()

		store := newStore()
		ids, err := store.List(ctx)
		if err != nil {
			return fmt.Errorf("failed to list routers: %w", err)
		}
		if len(ids) == 0 {
			fmt.Println("no committed routes")
			return nil
		}

		for _, id := range ids {
			route, err := store.Load(ctx, id)
			if err != nil {
				fmt.Printf("%s\t(unreadable: %v)\n", id, err)
				continue
			}
			fmt.Printf("%s\t%s\n", id, route.String())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
