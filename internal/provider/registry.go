package provider

import (
	"fmt"
	"strings"
	"sync"
)

// Variant parameterizes one adapter instance. A gateway exposes several
// host-visible payment methods (iDEAL, credit card, ...) that differ only in
// the method tag sent at creation and the webhook token they answer to, so a
// small record replaces a type per method.
type Variant struct {
	// ID is the host-visible provider identifier, e.g. "mollie-ideal".
	ID string
	// Method is the gateway-native payment method tag, empty when the
	// gateway should offer its full method selection.
	Method string
	// Description overrides the configured payment description.
	Description string
}

// Token builds the webhook routing token for a variant of a gateway,
// matching the callback path {host_url}/hooks/payment/{token}.
func Token(variantID, gateway string) string {
	return fmt.Sprintf("%s_%s", variantID, gateway)
}

// WebhookURL builds the callback address registered with the gateway.
func WebhookURL(hostURL, variantID, gateway string) string {
	return fmt.Sprintf("%s/hooks/payment/%s", strings.TrimRight(hostURL, "/"), Token(variantID, gateway))
}

// Registry resolves webhook tokens to constructed providers. It is populated
// once at startup and read-only afterwards; the mutex only guards against
// misuse during wiring.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

func (r *Registry) Register(p Provider) error {
	token := Token(p.ID(), p.Gateway())

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[token]; exists {
		return fmt.Errorf("provider %q already registered", token)
	}
	r.providers[token] = p
	return nil
}

func (r *Registry) Resolve(token string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[token]
	return p, ok
}

// Tokens lists registered webhook tokens, for startup logging.
func (r *Registry) Tokens() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tokens := make([]string, 0, len(r.providers))
	for t := range r.providers {
		tokens = append(tokens, t)
	}
	return tokens
}
