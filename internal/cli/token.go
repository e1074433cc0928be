package cli

import (
	"errors"
	"fmt"

	"speedxpress/internal/config"
	"speedxpress/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var tokenEmail string

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a signed 24h token for an email",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "email to put in the token")
	_ = tokenCmd.MarkFlagRequired("email")
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET must be set")
	}

	token, err := services.NewAuthService(cfg.JWTSecret, zap.NewNop()).IssueToken(tokenEmail)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
