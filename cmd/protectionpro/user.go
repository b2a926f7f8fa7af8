// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"protectionpro/internal/models"
	"protectionpro/internal/store"
)

var (
	userPassword string
	userName     string
	userRole     string
)

var userCmd = &cobra.Command{
	Use:     "user",
	Short:   "Manage admin accounts",
	GroupID: "data",
}

var userCreateCmd = &cobra.Command{
	Use:   "create EMAIL",
	Short: "Create an admin account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := strings.ToLower(strings.TrimSpace(args[0]))
		role := models.Role(userRole)
		if role != models.RoleAdmin && role != models.RoleEditor {
			return fmt.Errorf("unknown role %q", userRole)
		}
		if len(userPassword) < 8 {
			return errors.New("password must be at least 8 characters")
		}

		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		u, err := store.NewUserStore(db).Create(cmd.Context(), email, userPassword, userName, role)
		if err != nil {
			return err
		}
		slog.Info("user created", "email", u.Email, "role", u.Role)
		return nil
	},
}

var userReset2FACmd = &cobra.Command{
	Use:   "reset-2fa EMAIL",
	Short: "Clear a user's TOTP enrollment so they set it up again",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()

		email := strings.ToLower(strings.TrimSpace(args[0]))
		ok, err := store.NewUserStore(db).ResetTOTP(cmd.Context(), email)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no user with email %q", email)
		}
		slog.Info("two-factor authentication reset", "email", email)
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&userPassword, "password", "", "initial password (required)")
	userCreateCmd.Flags().StringVar(&userName, "name", "", "display name")
	userCreateCmd.Flags().StringVar(&userRole, "role", string(models.RoleAdmin), "admin or editor")
	userCreateCmd.MarkFlagRequired("password")

	userCmd.AddCommand(userCreateCmd, userReset2FACmd)
	rootCmd.AddCommand(userCmd)
}
