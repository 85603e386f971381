package credential

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrMissing signals that a credential is not configured for the requested
// service. Callers match it with errors.Is to map it onto their own error
// envelope.
var ErrMissing = errors.New("credentials not configured")

// Kind identifies which upstream service a credential authenticates against.
type Kind string

const (
	KindMattermost Kind = "mattermostApi"
	KindClockify   Kind = "clockifyApi"
)

func (k Kind) String() string {
	return string(k)
}

// Credential carries what the HTTP layer needs to authenticate requests.
type Credential struct {
	Kind    Kind
	BaseURL string
	Token   string
	// Header names the request header carrying the token. Empty means
	// Authorization.
	Header string
	// Scheme prefixes the token inside the header, e.g. "Bearer".
	Scheme string
}

// HeaderValue returns the header name and fully assembled value.
func (c *Credential) HeaderValue() (string, string) {
	name := c.Header
	if name == "" {
		name = "Authorization"
	}
	value := c.Token
	if c.Scheme != "" {
		value = c.Scheme + " " + c.Token
	}
	return name, value
}

// JoinBaseURL appends an API path to the credential's base URL unless the
// base URL already ends with it.
func (c *Credential) JoinBaseURL(apiPath string) string {
	base := strings.TrimRight(c.BaseURL, "/")
	if apiPath == "" || strings.HasSuffix(base, apiPath) {
		return base
	}
	return base + apiPath
}

// Provider resolves credentials for a service kind.
type Provider interface {
	Credential(ctx context.Context, kind Kind) (*Credential, error)
}

// StaticProvider serves credentials from a fixed map. Intended for tests.
type StaticProvider struct {
	Credentials map[Kind]*Credential
}

func NewStaticProvider(creds ...*Credential) *StaticProvider {
	m := make(map[Kind]*Credential, len(creds))
	for _, c := range creds {
		m[c.Kind] = c
	}
	return &StaticProvider{Credentials: m}
}

func (p *StaticProvider) Credential(_ context.Context, kind Kind) (*Credential, error) {
	if c, ok := p.Credentials[kind]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w for %s", ErrMissing, kind)
}

// ContextKey is an alias used for storing values in context
type ContextKey string

const (
	// ProviderCtxKey is the context key used to store the Provider instance
	ProviderCtxKey ContextKey = "credential_provider"
)

// ContextWithProvider stores the credential provider in the context
func ContextWithProvider(ctx context.Context, p Provider) context.Context {
	return context.WithValue(ctx, ProviderCtxKey, p)
}

var defaultProvider Provider
var defaultProviderOnce sync.Once

// FromContext retrieves the credential provider from the context, falling
// back to a configuration-backed provider when none was attached.
func FromContext(ctx context.Context) Provider {
	if ctx != nil {
		if p, ok := ctx.Value(ProviderCtxKey).(Provider); ok && p != nil {
			return p
		}
	}
	defaultProviderOnce.Do(func() {
		defaultProvider = NewConfigProvider()
	})
	return defaultProvider
}
