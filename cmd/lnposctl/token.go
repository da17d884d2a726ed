package main

import (
	"fmt"
	"os"
	"time"

	"lnpos-gateway/config"
	"lnpos-gateway/internal/service"

	"github.com/spf13/cobra"
)

func tokenCmd() *cobra.Command {
	var (
		configPath string
		wallets    []string
		admin      bool
		expiry     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token [subject]",
		Short: "Mint an admin API bearer token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				configPath = os.Getenv("LNPOS_CONFIG")
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cfg.JWT.Secret == "" {
				return fmt.Errorf("jwt.secret is required")
			}
			if expiry <= 0 {
				expiry = cfg.JWT.Expiry
			}

			tokens := service.NewJWTTokenService(cfg.JWT.Secret, expiry, cfg.JWT.Issuer)
			token, exp, err := tokens.Generate(args[0], wallets, admin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", exp.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file")
	cmd.Flags().StringSliceVarP(&wallets, "wallet", "w", nil, "Wallet the token may act on (repeatable)")
	cmd.Flags().BoolVar(&admin, "admin", false, "Allow terminal create, update and delete")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "Token lifetime (default jwt.expiry)")

	return cmd
}
