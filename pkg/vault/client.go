// pkg/vault/client.go

package vault

import (
	"time"

	"github.com/CodeMonkeyCybersecurity/genpass/pkg/genpass_io"
	cerr "github.com/cockroachdb/errors"
	"github.com/hashicorp/vault/api"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// NewClient builds a Vault client from the environment (VAULT_ADDR,
// VAULT_TOKEN, VAULT_CACERT, ...).
func NewClient(rc *genpass_io.RuntimeContext) (*api.Client, error) {
	cfg := api.DefaultConfig()
	if err := cfg.ReadEnvironment(); err != nil {
		return nil, cerr.Wrap(err, "read vault environment")
	}

	client, err := api.NewClient(cfg)
	if err != nil {
		return nil, cerr.Wrap(err, "create vault client")
	}
	if client.Token() == "" {
		return nil, cerr.New("no vault token available; set VAULT_TOKEN")
	}

	otelzap.Ctx(rc.Ctx).Info("Vault client ready", zap.String("vault_addr", cfg.Address))
	rc.Attributes["vault_addr"] = cfg.Address
	return client, nil
}

// StorePassword writes the generated password to the KV-v2 engine at
// mount/path, alongside the generation timestamp.
func StorePassword(rc *genpass_io.RuntimeContext, client *api.Client, mount, path, password string) error {
	data := SecretData(password)

	if _, err := client.KVv2(mount).Put(rc.Ctx, path, data); err != nil {
		return cerr.Wrapf(err, "write secret to %s/%s", mount, path)
	}

	otelzap.Ctx(rc.Ctx).Info("Password stored in Vault",
		zap.String("mount", mount),
		zap.String("path", path))
	return nil
}

// SecretData shapes the KV-v2 payload for a generated password.
func SecretData(password string) map[string]interface{} {
	return map[string]interface{}{
		"password":     password,
		"generated_at": time.Now().UTC().Format(time.RFC3339),
		"generator":    "genpass",
	}
}
