package authsdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient talks to a tokend server.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client

	// OperatorToken is sent as the bearer credential of management calls.
	OperatorToken string
}

// NewSDKClient returns a client for baseURL with a 10 second timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
