package main

import (
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrate(cfg)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the reference clients into an empty table",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := migrate(cfg); err != nil {
			return err
		}

		st, err := openStore(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer st.Close()

		return st.Seed(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
}
