package judge

import (
	"context"
	"fmt"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// cloudPlatformScope is the OAuth scope covering the managed model API.
const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// TokenProvider supplies a bearer token scoped to the judge-model
// capability. Implementations must be safe for concurrent use: one
// provider is shared by every orchestration run in the process.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// StaticTokenProvider returns a fixed token. Used in tests and in
// deployments where token rotation happens outside the process.
type StaticTokenProvider string

// Token returns the fixed token.
func (p StaticTokenProvider) Token(ctx context.Context) (string, error) {
	if p == "" {
		return "", fmt.Errorf("static token is empty")
	}
	return string(p), nil
}

// ServiceAccountTokenProvider exchanges a service-account key file for
// short-lived bearer tokens. The underlying oauth2 token source caches
// and refreshes tokens and is internally synchronized.
type ServiceAccountTokenProvider struct {
	keyFile string

	mu     sync.Mutex
	source oauth2.TokenSource
}

// NewServiceAccountTokenProvider creates a provider reading the
// service-account JSON key from keyFile. The file is not touched until
// the first Token call.
func NewServiceAccountTokenProvider(keyFile string) *ServiceAccountTokenProvider {
	return &ServiceAccountTokenProvider{keyFile: keyFile}
}

// Token returns a valid bearer token, initializing the token source on
// first use.
func (p *ServiceAccountTokenProvider) Token(ctx context.Context) (string, error) {
	source, err := p.tokenSource(ctx)
	if err != nil {
		return "", err
	}
	tok, err := source.Token()
	if err != nil {
		return "", fmt.Errorf("fetching token for %s: %w", p.keyFile, err)
	}
	return tok.AccessToken, nil
}

func (p *ServiceAccountTokenProvider) tokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.source != nil {
		return p.source, nil
	}

	data, err := os.ReadFile(p.keyFile)
	if err != nil {
		return nil, fmt.Errorf("reading service account key: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, data, cloudPlatformScope)
	if err != nil {
		return nil, fmt.Errorf("parsing service account key: %w", err)
	}
	p.source = creds.TokenSource
	return p.source, nil
}
