// Package main implements the doushi command line tool, which offers
// offline conjugation and verb catalog seeding.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "doushi",
	Short: "Japanese verb study toolbox",
	Long: `doushi is the companion CLI for the doushi API. It derives verb
conjugations offline and seeds the verb catalog database.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(conjugateCmd)
	rootCmd.AddCommand(seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
