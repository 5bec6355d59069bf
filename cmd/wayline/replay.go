package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/aretw0/wayline"
	"github.com/aretw0/wayline/internal/scenario"
	httpAdapter "github.com/aretw0/wayline/pkg/adapters/http"
	"github.com/aretw0/wayline/pkg/observability"
)

var replayCmd = &cobra.Command{
	Use:   "replay <scenario.yaml>",
	Short: "Replay a scripted route sequence against demo handlers",
	Long:  `Loads a scenario file and feeds its route states to a router, printing every transition the handlers perform. Useful for exercising and demonstrating diff behavior.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		listen, _ := cmd.Flags().GetString("listen")
		routerID, _ := cmd.Flags().GetString("router-id")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		logger := newLogger()

		sc, err := scenario.Load(args[0])
		if err != nil {
			return err
		}

		reg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(reg)

		router := wayline.New(newConsoleHandler("root", os.Stdout),
			wayline.WithLogger(logger),
			wayline.WithTimeout(timeout),
			wayline.WithStore(newStore(), routerID),
			wayline.WithLifecycleHooks(metrics.Hooks()),
		)
		defer router.Close()

		if listen != "" {
			debug := httpAdapter.NewHandler(router,
				httpAdapter.WithLogger(logger),
				httpAdapter.WithMetricsHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})),
			)
			go func() {
				logger.Info("debug server listening", "addr", listen)
				if err := http.ListenAndServe(listen, debug); err != nil {
					logger.Error("debug server failed", "err", err)
				}
			}()
		}

		if sc.Name != "" {
			fmt.Printf("--- %s ---\n", sc.Name)
		}

		for i, step := range sc.Steps {
			state := step.State()
			fmt.Printf("step %d: %s\n", i+1, state.Route.String())
			router.OnRouteChanged(state)
			if step.Delay > 0 {
				time.Sleep(step.Delay)
			}
		}

		// Let the lane drain before reporting the final route.
		for router.QueueLen() > 0 || router.InFlight() {
			time.Sleep(10 * time.Millisecond)
		}

		fmt.Printf("final route: %s (depth %d)\n", router.CurrentRoute().String(), router.Depth())
		return nil
	},
}

func init() {
	replayCmd.Flags().String("listen", "", "Serve debug endpoints (route, status, metrics) on this address while replaying")
	replayCmd.Flags().String("router-id", "wayline-cli", "Router ID used for route store entries")
	replayCmd.Flags().Duration("timeout", 3*time.Second, "Per-action completion timeout")
	rootCmd.AddCommand(replayCmd)
}
