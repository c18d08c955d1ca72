/*
Package authsdk is the client side of the tokend HTTP API and the home of the
OAuth2 error type shared by server and client.

Resource servers mostly need Introspect or TokenInfo to turn a bearer token
into claims, and Refresh to trade a refresh token for a new pair:

	client := authsdk.NewSDKClient("https://tokend.example.com")

	info, err := client.Introspect(ctx, accessToken)
	if err != nil {
		return err
	}
	if !info.Active {
		// reject the request
	}

	pair, err := client.Refresh(ctx, refreshToken)

Management calls (minting tokens, registering apps, rotating secrets, opening
sessions) need an operator JWT:

	client.OperatorToken = operatorJWT
	pair, err := client.CreateToken(ctx, authsdk.CreateTokenRequest{UserID: "42"})

Failed calls return *OAuth2Error, which matches the predefined errors with
errors.Is by error code:

	if errors.Is(err, authsdk.ErrInvalidGrant) {
		// the refresh token is no longer valid
	}
*/
package authsdk
