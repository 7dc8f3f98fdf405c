package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "itemservice",
	Short: "Item catalogue with validated web forms and a JSON API",
	Long: `itemservice keeps a catalogue of items (name, price, quantity).

Items are created and edited through HTML forms or the JSON API. Every
submission is validated; rejected forms are shown again with the user's
input and an error next to each offending field.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, hashPasswordCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
