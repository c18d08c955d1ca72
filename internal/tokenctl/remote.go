package tokenctl

import (
	"os"
	"time"

	"github.com/aussiebroadwan/tokend/pkg/authsdk"
	"github.com/spf13/cobra"
)

type remoteOptions struct {
	url           string
	operatorToken string
	timeout       time.Duration
}

func (o *remoteOptions) client() *authsdk.SDKClient {
	c := authsdk.NewSDKClient(o.url)
	c.OperatorToken = o.operatorToken
	c.HTTPClient.Timeout = o.timeout
	return c
}

func newRemoteCmd() *cobra.Command {
	opts := &remoteOptions{}

	cmd := &cobra.Command{
		Use:   "remote",
		Short: "Talk to a running tokend",
	}

	urlDefault := os.Getenv("TOKEND_URL")
	if urlDefault == "" {
		urlDefault = "http://localhost:8080"
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.url, "url", urlDefault, "tokend base URL (env TOKEND_URL)")
	pf.StringVar(&opts.operatorToken, "operator-token", os.Getenv("TOKEND_OPERATOR_TOKEN"),
		"operator JWT for management calls (env TOKEND_OPERATOR_TOKEN)")
	pf.DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "introspect TOKEN",
			Short: "Ask whether an access token is active",
			Args:  tokenArg,
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.client().Introspect(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, out)
			},
		},
		&cobra.Command{
			Use:   "refresh TOKEN",
			Short: "Run the refresh grant",
			Args:  tokenArg,
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.client().Refresh(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, out)
			},
		},
		&cobra.Command{
			Use:   "tokeninfo TOKEN",
			Short: "Decode an access token on the server",
			Args:  tokenArg,
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.client().TokenInfo(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, out)
			},
		},
		&cobra.Command{
			Use:   "register-app NAME",
			Short: "Register an app and print its secret",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.client().RegisterApp(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, out)
			},
		},
		&cobra.Command{
			Use:   "rotate-app-secret APP_ID",
			Short: "Replace an app secret",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.client().RotateAppSecret(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, out)
			},
		},
		&cobra.Command{
			Use:   "rotate-user-secret USER_ID",
			Short: "Set a fresh user secret",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				out, err := opts.client().RotateUserSecret(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, out)
			},
		},
		newOpenSessionCmd(opts),
		&cobra.Command{
			Use:   "close-session SESSION_ID",
			Short: "End a login session",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return opts.client().CloseSession(cmd.Context(), args[0])
			},
		},
		&cobra.Command{
			Use:   "health",
			Short: "Print the readiness of tokend",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				out, err := opts.client().GetReadiness(cmd.Context())
				if err != nil {
					return err
				}
				return writeJSON(cmd, out)
			},
		},
	)

	return cmd
}

func newOpenSessionCmd(opts *remoteOptions) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "open-session USER_ID",
		Short: "Open a login session for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := opts.client().OpenSession(cmd.Context(), authsdk.OpenSessionRequest{
				UserID:     args[0],
				TTLSeconds: int64(ttl / time.Second),
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, out)
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "session lifetime (default server setting)")
	return cmd
}
