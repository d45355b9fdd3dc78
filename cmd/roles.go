package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rpupo63/devfolio-backend/database"
	"github.com/rpupo63/devfolio-backend/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "Manage user roles",
}

var grantAdminCmd = &cobra.Command{
	Use:   "grant-admin <user-id>",
	Short: "Give a user the admin role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeAdmin(cmd, args[0], true)
	},
}

var revokeAdminCmd = &cobra.Command{
	Use:   "revoke-admin <user-id>",
	Short: "Take the admin role away from a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeAdmin(cmd, args[0], false)
	},
}

func changeAdmin(cmd *cobra.Command, rawID string, grant bool) error {
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", rawID, err)
	}
	_, db, err := openDatabase(cmd.Context())
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	roles := database.New(db).UserRoleRepo()
	if grant {
		err = roles.Grant(cmd.Context(), userID, models.RoleAdmin)
	} else {
		err = roles.Revoke(cmd.Context(), userID, models.RoleAdmin)
	}
	if err != nil {
		return err
	}
	log.Info().Str("userID", userID.String()).Bool("admin", grant).Msg("Role updated")
	return nil
}

func init() {
	rolesCmd.AddCommand(grantAdminCmd, revokeAdminCmd)
	rootCmd.AddCommand(rolesCmd)
}
