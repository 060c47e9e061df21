package main

import (
	"fmt"

	"github.com/aretw0/cellgrid"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cellgrid",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cellgrid version %s\n", cellgrid.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
