package recaptcha

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const verifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks a client-supplied captcha token.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) bool
}

type Client struct {
	secret     string
	endpoint   string
	httpClient *http.Client
}

func NewClient(secret string) *Client {
	return &Client{
		secret:     secret,
		endpoint:   verifyURL,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Verify posts the token to Google's siteverify endpoint. Any transport
// or decode failure counts as a failed verification, never an error.
func (c *Client) Verify(ctx context.Context, token, remoteIP string) bool {
	if token == "" {
		return false
	}

	form := url.Values{}
	form.Set("secret", c.secret)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		log.Error().Err(err).Str("component", "recaptcha").Msg("")
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error().Err(err).Str("component", "recaptcha").Msg("")
		return false
	}
	defer resp.Body.Close()

	var result struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Error().Err(err).Str("component", "recaptcha").Msg("")
		return false
	}

	return result.Success
}
