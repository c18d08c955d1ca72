// Package tokenctl implements the tokenctl command line: offline token
// operations against a salt, operator JWT minting, and calls against a
// running tokend.
package tokenctl

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/aussiebroadwan/tokend/pkg/cryptox"
	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the tokenctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tokenctl",
		Short:        "Create, decode and inspect tokend bearer tokens",
		SilenceUsage: true,
	}

	root.AddCommand(
		newCreateCmd(),
		newDecodeCmd(),
		newRefreshCmd(),
		newInspectCmd(),
		newOperatorTokenCmd(),
		newRemoteCmd(),
	)
	return root
}

// saltOptions selects the salt offline commands sign and verify with.
type saltOptions struct {
	salt     string
	saltFile string
}

func (o *saltOptions) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.salt, "salt", os.Getenv("TOKEN_SALT"), "literal token salt (env TOKEN_SALT)")
	cmd.Flags().StringVar(&o.saltFile, "salt-file", os.Getenv("TOKEN_SALT_FILE"), "salt file written by tokend (env TOKEN_SALT_FILE)")
	cmd.MarkFlagsMutuallyExclusive("salt", "salt-file")
}

func (o *saltOptions) load() ([]byte, error) {
	if o.saltFile != "" {
		return cryptox.ReadSalt(o.saltFile)
	}
	return []byte(o.salt), nil
}

// service returns a token service without collaborator checks; offline
// commands have no registry to consult.
func (o *saltOptions) service() (*oauthtoken.Service, error) {
	salt, err := o.load()
	if err != nil {
		return nil, err
	}
	return oauthtoken.New(oauthtoken.Config{Salt: salt}), nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var errTokenArg = errors.New("exactly one token argument is required")

func tokenArg(_ *cobra.Command, args []string) error {
	if len(args) != 1 || args[0] == "" {
		return errTokenArg
	}
	return nil
}
