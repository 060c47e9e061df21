package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/cellgrid"
	"github.com/aretw0/cellgrid/internal/config"
	"github.com/aretw0/cellgrid/internal/logging"
	"github.com/aretw0/cellgrid/pkg/adapters/file"
	"github.com/aretw0/cellgrid/pkg/adapters/redis"
	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/aretw0/cellgrid/pkg/persistence/middleware"
	"github.com/aretw0/cellgrid/pkg/ports"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cellgrid",
	Short: "Cellgrid maps notebook cells into a dependency graph you can command",
	Long: `Cellgrid analyzes a Jupyter notebook without running it, links cells by
the variables and data files they share, and interprets plain-language
commands like "run cells 2 to 5" against the resulting graph.`,
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
	rootCmd.PersistentFlags().StringP("notebook", "n", "", "Path to the .ipynb notebook")
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the cellgrid config file")
}

func loadConfig(cmd *cobra.Command) config.Config {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func notebookPath(cmd *cobra.Command, args []string) string {
	path, _ := cmd.Flags().GetString("notebook")
	if path == "" && len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		fmt.Println("Error: a notebook is required (use --notebook or pass it as an argument).")
		os.Exit(1)
	}
	return path
}

// newEngine wires the engine from config: redis-backed sessions when an
// address is configured, in-memory otherwise, and intents written as
// NDJSON for an external executor to consume.
func newEngine(cfg config.Config, intents io.Writer, opts ...cellgrid.Option) *cellgrid.Engine {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	all := []cellgrid.Option{
		cellgrid.WithLogger(logger),
		cellgrid.WithLayout(cfg.Layout),
		cellgrid.WithZoomBounds(cfg.Zoom.Step, cfg.Zoom.Min, cfg.Zoom.Max),
	}

	if intents != nil {
		all = append(all, cellgrid.WithDispatcher(ndjsonDispatcher(intents)))
	}

	all = append(all, cellgrid.WithStore(getStore(cfg)))

	all = append(all, opts...)
	return cellgrid.New(all...)
}

// getStore picks session persistence: Redis when configured, JSON files
// under .cellgrid/sessions otherwise, wrapped in the configured
// redaction/encryption middleware.
func getStore(cfg config.Config) ports.SessionStore {
	var store ports.SessionStore
	if cfg.Redis.Addr != "" {
		store = redis.New(cfg.Redis.Addr, "", 0, redis.WithPrefix(cfg.Redis.Prefix))
	} else {
		store = file.NewStore("")
	}

	if cfg.Session.EncryptionKey != "" {
		key, err := base64.StdEncoding.DecodeString(cfg.Session.EncryptionKey)
		if err != nil || len(key) != 32 {
			fmt.Println("Error: session.encryption_key must be the base64 of a 32-byte key.")
			os.Exit(1)
		}
		store = middleware.NewEncryptionMiddleware(middleware.EncryptionConfig{ActiveKey: key})(store)
	}
	// Redaction sits outermost so it masks plaintext history, never
	// ciphertext.
	if len(cfg.Session.RedactPatterns) > 0 {
		store = middleware.NewRedactionMiddleware(cfg.Session.RedactPatterns)(store)
	}
	return store
}

// ndjsonDispatcher writes one JSON line per intent, the hand-off format
// an executor process can tail.
func ndjsonDispatcher(w io.Writer) ports.IntentDispatcher {
	enc := json.NewEncoder(w)
	return ports.DispatchFunc(func(_ context.Context, req domain.IntentRequest) error {
		return enc.Encode(req)
	})
}
