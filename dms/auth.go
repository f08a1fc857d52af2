package dms

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenSource supplies bearer tokens for requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed bearer token.
type StaticToken string

// Token returns the token.
func (t StaticToken) Token(context.Context) (string, error) {
	if t == "" {
		return "", fmt.Errorf("dms: empty static token")
	}
	return string(t), nil
}

// expiryLeeway is how long before expiry a cached token is refreshed.
const expiryLeeway = 30 * time.Second

// ClientCredentials fetches tokens with the OAuth2 client-credentials grant
// and caches them until shortly before they expire.
type ClientCredentials struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	Audience     string
	// HTTPClient is used for token requests (default: http.DefaultClient).
	HTTPClient *http.Client

	mu  sync.Mutex
	src oauth2.TokenSource
}

// Token returns a cached token or fetches a new one. Concurrent callers
// share one token request, which is not bound to any caller's context.
func (c *ClientCredentials) Token(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	src := c.source()
	type result struct {
		tok *oauth2.Token
		err error
	}
	done := make(chan result, 1)
	go func() {
		tok, err := src.Token()
		done <- result{tok, err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		if r.err != nil {
			return "", fmt.Errorf("dms: token request: %w", r.err)
		}
		return r.tok.AccessToken, nil
	}
}

// Invalidate drops the cached token so the next call fetches a new one.
func (c *ClientCredentials) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.src = nil
}

func (c *ClientCredentials) source() oauth2.TokenSource {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.src != nil {
		return c.src
	}
	cfg := &clientcredentials.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		TokenURL:     c.TokenURL,
		Scopes:       c.Scopes,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
	if c.Audience != "" {
		cfg.EndpointParams = url.Values{"audience": {c.Audience}}
	}
	ctx := context.Background()
	if c.HTTPClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.HTTPClient)
	}
	c.src = oauth2.ReuseTokenSourceWithExpiry(nil, expirySource{ctx: ctx, cfg: cfg}, expiryLeeway)
	return c.src
}

// expirySource fetches a fresh token on every call and rewrites its expiry
// for reuse decisions.
type expirySource struct {
	ctx context.Context
	cfg *clientcredentials.Config
}

func (s expirySource) Token() (*oauth2.Token, error) {
	tok, err := s.cfg.Token(s.ctx)
	if err != nil {
		return nil, err
	}
	tok.Expiry = tokenExpiry(tok, time.Now())
	return tok, nil
}

// tokenExpiry prefers expires_in and falls back to the JWT exp claim.
// Opaque tokens without expires_in get a zero expiry and are kept until
// invalidated. Tokens living less than twice expiryLeeway are shifted so
// they are reused for half their lifetime.
func tokenExpiry(tok *oauth2.Token, now time.Time) time.Time {
	exp := tok.Expiry
	if exp.IsZero() {
		exp = jwtExpiry(tok.AccessToken)
	}
	if exp.IsZero() {
		return exp
	}
	if life := exp.Sub(now); life < 2*expiryLeeway {
		return now.Add(life/2 + expiryLeeway)
	}
	return exp
}

func jwtExpiry(raw string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

// invalidator is implemented by token sources that can drop a rejected token.
type invalidator interface {
	Invalidate()
}
