package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Inspect or clear the PDF extraction cache",
}

var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show extraction cache status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openCacheStore()
		if err != nil {
			return err
		}
		defer store.Close()

		entries, version, err := store.Status(context.Background())
		if err != nil {
			return fmt.Errorf("reading cache status: %w", err)
		}

		cmd.Printf("Cache file:      %s\n", store.Path())
		cmd.Printf("Schema version:  %d\n", version)
		cmd.Printf("Cached texts:    %d\n", entries)
		return nil
	},
}

var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached PDF texts",
	Long: `Removes every cached text and the completion marker. The next run will
re-extract all PDFs.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		store, err := openCacheStore()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Clear(context.Background()); err != nil {
			return fmt.Errorf("clearing cache: %w", err)
		}
		cmd.Println("Extraction cache cleared.")
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cacheStatusCmd)
	cacheCmd.AddCommand(cacheClearCmd)
	rootCmd.AddCommand(cacheCmd)
}
