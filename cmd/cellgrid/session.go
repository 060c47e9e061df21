package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage persisted notebook sessions",
	Long:  `List, inspect, and remove persisted sessions (selection, viewport, command history) stored on disk or in Redis.`,
}

var sessionLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all persisted sessions",
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(loadConfig(cmd))
		paths, err := store.List(cmd.Context())
		if err != nil {
			fmt.Printf("Error listing sessions: %v\n", err)
			os.Exit(1)
		}

		if len(paths) == 0 {
			fmt.Println("No persisted sessions found.")
			return
		}

		fmt.Println("Persisted sessions:")
		for _, p := range paths {
			fmt.Println("- " + p)
		}
	},
}

var sessionInspectCmd = &cobra.Command{
	Use:   "inspect <notebook>",
	Short: "Inspect the state of a session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(loadConfig(cmd))
		state, err := store.Load(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Error loading session '%s': %v\n", args[0], err)
			os.Exit(1)
		}

		data, err := json.MarshalIndent(state, "", "  ")
		if err != nil {
			fmt.Printf("Error marshaling state: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	},
}

var sessionRmCmd = &cobra.Command{
	Use:   "rm <notebook>",
	Short: "Remove a persisted session",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := getStore(loadConfig(cmd))
		if err := store.Delete(cmd.Context(), args[0]); err != nil {
			fmt.Printf("Error removing session '%s': %v\n", args[0], err)
			os.Exit(1)
		}
		fmt.Printf("Session '%s' removed.\n", args[0])
	},
}

func init() {
	sessionCmd.AddCommand(sessionLsCmd, sessionInspectCmd, sessionRmCmd)
	rootCmd.AddCommand(sessionCmd)
}
