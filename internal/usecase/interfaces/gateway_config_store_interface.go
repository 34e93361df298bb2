package interfaces

import "context"

// Well-known gateway configuration keys.
const (
	ConfigKeyUsername      = "username"
	ConfigKeyPassword      = "password"
	ConfigKeyToken         = "token"
	ConfigKeyMerchantID    = "merchant_id"
	ConfigKeyIframeID      = "iframe_id"
	ConfigKeyIntegrationID = "integration_id"
)

// IGatewayConfigStore is the key-value configuration capability injected into
// the gateway client. The client reads credentials and cached session state at
// construction and writes token/merchant_id back after a successful
// authentication, so the next construction skips the auth call.
//
// Get returns "" (not an error) for keys that are absent.
type IGatewayConfigStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, values map[string]string) error
}
