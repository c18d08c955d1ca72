package tokenctl

import (
	"fmt"
	"os"
	"time"

	"github.com/aussiebroadwan/tokend/internal/tokend/domain"
	"github.com/aussiebroadwan/tokend/pkg/jwtx"
	"github.com/spf13/cobra"
)

func newOperatorTokenCmd() *cobra.Command {
	var (
		secret, issuer, subject string
		scopes                  []string
		ttl                     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "operator-token",
		Short: "Mint an HS256 operator JWT for the management API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			signer, err := jwtx.NewSignerHS256([]byte(secret))
			if err != nil {
				return err
			}

			tok, err := signer.Sign(jwtx.NewOperatorClaims(subject, issuer, scopes, ttl, time.Now()))
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tok)
			return err
		},
	}

	issuerDefault := os.Getenv("OPERATOR_ISSUER")
	if issuerDefault == "" {
		issuerDefault = "tokend"
	}

	f := cmd.Flags()
	f.StringVar(&secret, "secret", os.Getenv("OPERATOR_SECRET"), "HS256 key shared with tokend (env OPERATOR_SECRET)")
	f.StringVar(&issuer, "issuer", issuerDefault, "issuer tokend expects (env OPERATOR_ISSUER)")
	f.StringVar(&subject, "subject", "tokenctl", "operator identity recorded in the sub claim")
	f.StringSliceVar(&scopes, "scope", []string{domain.ScopeTokensWrite, domain.ScopeRegistryWrite}, "granted scopes")
	f.DurationVar(&ttl, "ttl", jwtx.DefaultOperatorTokenTTL, "token lifetime")

	return cmd
}
