package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/freeeve/vscc-rating/internal/repository"
)

var setsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List scenario sets in a store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Source == "" {
			return errors.New("sets: --source or VSCC_SOURCE is required")
		}

		repo, err := repository.Open(cmd.Context(), cfg.Source)
		if err != nil {
			return fmt.Errorf("sets: %w", err)
		}
		defer repo.Close()

		sets, err := repo.Sets(cmd.Context())
		if err != nil {
			return fmt.Errorf("sets: %w", err)
		}
		for _, s := range sets {
			fmt.Fprintln(cmd.OutOrStdout(), s)
		}
		return nil
	},
}

func init() {
	setsCmd.Flags().String("source", "", "scenario store URL (postgres://, sqlite://, redis://)")
	rootCmd.AddCommand(setsCmd)
}
