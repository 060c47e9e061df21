package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/cellgrid"
	"github.com/aretw0/cellgrid/internal/metrics"
	httpAdapter "github.com/aretw0/cellgrid/pkg/adapters/http"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long:  `Starts the cellgrid engine in server mode, exposing the graph and command API as JSON over HTTP, with Prometheus metrics on /metrics.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig(cmd)
		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.HTTP.Addr
		}

		collectors := metrics.New()
		registry := prometheus.NewRegistry()
		if err := collectors.Register(registry); err != nil {
			fmt.Printf("Error registering metrics: %v\n", err)
			os.Exit(1)
		}

		engine := newEngine(cfg, os.Stdout,
			cellgrid.WithLifecycleHooks(collectors.Hooks()),
		)

		handler := httpAdapter.NewHandler(engine, nil, map[string]http.Handler{
			"/metrics": promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		})

		srv := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		serverErrors := make(chan error, 1)
		go func() {
			fmt.Printf("Starting cellgrid server on %s\n", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			fmt.Printf("Server error: %v\n", err)
			os.Exit(1)

		case sig := <-shutdown:
			fmt.Printf("\nStart shutdown... Signal: %v\n", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				fmt.Printf("Graceful shutdown did not complete in %v: %v\n", 5*time.Second, err)
				if err := srv.Close(); err != nil {
					fmt.Printf("Error killing server: %v\n", err)
				}
			}
			fmt.Println("cellgrid server stopped gracefully")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("addr", "a", "", "Listen address (defaults to the config http.addr)")
}
