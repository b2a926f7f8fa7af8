// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"protectionpro/internal/database"
)

var seedAfterMigrate bool

var migrateCmd = &cobra.Command{
	Use:     "migrate",
	Short:   "Apply pending database migrations",
	GroupID: "data",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		if seedAfterMigrate {
			if err := database.Seed(db); err != nil {
				return err
			}
		}
		slog.Info("database is up to date")
		return nil
	},
}

func init() {
	migrateCmd.Flags().BoolVar(&seedAfterMigrate, "seed", false, "create the starter admin and sample content on an empty database")
	rootCmd.AddCommand(migrateCmd)
}
