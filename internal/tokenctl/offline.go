package tokenctl

import (
	"time"

	"github.com/aussiebroadwan/tokend/pkg/oauthtoken"
	"github.com/aussiebroadwan/tokend/pkg/tokenx"
	"github.com/spf13/cobra"
)

// claimsView prints every claim of a token, secrets included, plus its
// expiry when it has one.
type claimsView struct {
	Type string `json:"type,omitempty"`
	tokenx.Claims
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Expired   *bool      `json:"expired,omitempty"`
}

func newClaimsView(c tokenx.Claims) claimsView {
	v := claimsView{Claims: c}
	if exp, ok := oauthtoken.ExpiresAt(c); ok {
		v.ExpiresAt = &exp
	}
	return v
}

func newCreateCmd() *cobra.Command {
	var (
		salt                                          saltOptions
		appID, appSecret, userID, userSecret, session string
		issued, ttl                                   int64
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an access and refresh token pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := salt.service()
			if err != nil {
				return err
			}

			claims := tokenx.Claims{UserID: tokenx.String(userID)}
			flags := cmd.Flags()
			optional := func(name, v string) *string {
				if !flags.Changed(name) {
					return nil
				}
				return tokenx.String(v)
			}
			claims.AppID = optional("app-id", appID)
			claims.AppSecret = optional("app-secret", appSecret)
			claims.UserSecret = optional("user-secret", userSecret)
			claims.Session = optional("session", session)
			if flags.Changed("issued") {
				claims.Issued = tokenx.Int64(issued)
			}
			if flags.Changed("ttl") {
				claims.TTL = tokenx.Int64(ttl)
			}

			pair, err := svc.Create(cmd.Context(), claims)
			if err != nil {
				return err
			}
			return writeJSON(cmd, pair)
		},
	}

	salt.register(cmd)
	f := cmd.Flags()
	f.StringVar(&userID, "user-id", "", "user id (required)")
	f.StringVar(&appID, "app-id", "", "app id")
	f.StringVar(&appSecret, "app-secret", "", "app secret")
	f.StringVar(&userSecret, "user-secret", "", "user secret")
	f.StringVar(&session, "session", "", "login session id")
	f.Int64Var(&issued, "issued", 0, "issuance time in unix seconds (default now)")
	f.Int64Var(&ttl, "ttl", oauthtoken.DefaultTTL, "lifetime in seconds, 0 never expires")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func newDecodeCmd() *cobra.Command {
	var salt saltOptions

	cmd := &cobra.Command{
		Use:   "decode TOKEN",
		Short: "Decode an access token, enforcing type and expiry",
		Args:  tokenArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := salt.service()
			if err != nil {
				return err
			}

			claims, err := svc.Decode(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, newClaimsView(*claims))
		},
	}

	salt.register(cmd)
	return cmd
}

func newRefreshCmd() *cobra.Command {
	var salt saltOptions

	cmd := &cobra.Command{
		Use:   "refresh TOKEN",
		Short: "Trade a refresh token for a new token pair",
		Args:  tokenArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := salt.service()
			if err != nil {
				return err
			}

			pair, err := svc.Refresh(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd, pair)
		},
	}

	salt.register(cmd)
	return cmd
}

func newInspectCmd() *cobra.Command {
	var salt saltOptions

	cmd := &cobra.Command{
		Use:   "inspect TOKEN",
		Short: "Verify the signature of any token and print its raw record",
		Long: "inspect checks only the signature. It prints refresh tokens and expired\n" +
			"tokens too, and reports whether an access token has expired.",
		Args: tokenArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := salt.load()
			if err != nil {
				return err
			}

			rec, err := tokenx.NewCodec(s).Decode(args[0])
			if err != nil {
				return err
			}

			view := newClaimsView(rec.Claims)
			view.Type = rec.Type.String()
			if rec.Type == tokenx.TypeAccess {
				expired := oauthtoken.Expired(rec.Claims, time.Now())
				view.Expired = &expired
			}
			return writeJSON(cmd, view)
		},
	}

	salt.register(cmd)
	return cmd
}
