package config

import (
	"context"
	"os"
	"strings"

	"paymob_service/internal/usecase/interfaces"
)

const envPrefix = "PAYMOB_"

// EnvConfigStore reads gateway configuration from PAYMOB_* environment
// variables (PAYMOB_USERNAME, PAYMOB_TOKEN, ...). Writes land in an in-memory
// overlay: the written-back token/merchant id survive for the process
// lifetime, which is what the construction-time session cache needs locally.
// For a cache shared across restarts use the DynamoDB-backed store.

type EnvConfigStore struct {
	overrides map[string]string
}

var _ interfaces.IGatewayConfigStore = (*EnvConfigStore)(nil)

func NewEnvConfigStore() *EnvConfigStore {
	return &EnvConfigStore{overrides: map[string]string{}}
}

func (s *EnvConfigStore) Get(_ context.Context, key string) (string, error) {
	if v, ok := s.overrides[key]; ok {
		return v, nil
	}
	return os.Getenv(envPrefix + strings.ToUpper(key)), nil
}

func (s *EnvConfigStore) Set(_ context.Context, values map[string]string) error {
	for k, v := range values {
		s.overrides[k] = v
	}
	return nil
}
