// Package creds resolves the AI service API key for the running deployment
// mode without baking secrets into the binary.
package creds

import (
	"encoding/base64"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pierson-davis/on-brand-ios-sub000/config"
)

type DeploymentMode string

const (
	Development DeploymentMode = "development"
	Staging     DeploymentMode = "staging"
	Production  DeploymentMode = "production"
)

type Status string

const (
	NotConfigured   Status = "not_configured"
	Configured      Status = "configured"
	ProductionReady Status = "production_ready"
	InvalidKey      Status = "invalid_key"
	Disabled        Status = "disabled"

	// Reserved for a future live key check; nothing drives these yet.
	NetworkError Status = "network_error"
	RateLimited  Status = "rate_limited"
)

func (s Status) DisplayName() string {
	switch s {
	case NotConfigured:
		return "Not Configured"
	case Configured:
		return "Ready"
	case ProductionReady:
		return "Production Ready"
	case InvalidKey:
		return "Invalid API Key"
	case Disabled:
		return "Disabled"
	case NetworkError:
		return "Network Error"
	case RateLimited:
		return "Rate Limited"
	}
	return string(s)
}

const (
	keyLine = "OPENAI_API_KEY"

	stagingAccount    = "openai_api_key_staging"
	productionAccount = "openai_api_key_production"
)

// Provider holds one resolved key for one deployment mode. Construct it at
// the composition root and pass it down; it is read-only after New.
type Provider struct {
	mode   DeploymentMode
	status Status
	key    string
}

func New(cfg *config.Config) *Provider {
	p := &Provider{
		mode:   DeploymentMode(cfg.AI.Mode),
		status: NotConfigured,
	}

	switch p.mode {
	case Staging:
		// Keystore first, then the staging config file, then the local override
		if key, ok := fromKeystore(cfg.AI.KeystorePath, stagingAccount); ok {
			p.configure(key)
		} else if key, ok := fromKeyFile(cfg.AI.StagingFile); ok {
			p.configure(key)
		} else if key, ok := fromOverride(cfg.AI.OverrideFile); ok {
			p.configure(key)
		}
	case Production:
		// Keystore, then the production config file, then the encrypted bundle
		if key, ok := fromKeystore(cfg.AI.KeystorePath, productionAccount); ok {
			p.configure(key)
		} else if key, ok := fromKeyFile(cfg.AI.ProdFile); ok {
			p.configure(key)
		} else if key, ok := fromEncrypted(cfg.AI.EncryptedFile); ok {
			p.configure(key)
		}
	default:
		p.mode = Development
		if key, ok := fromKeyFile(cfg.AI.DevKeyFile); ok {
			p.configure(key)
		} else if key, ok := fromOverride(cfg.AI.OverrideFile); ok {
			p.configure(key)
		}
	}

	return p
}

func (p *Provider) IsReady() bool {
	return p.key != "" && (p.status == Configured || p.status == ProductionReady)
}

// Key returns the resolved API key, or false when the provider is not ready.
func (p *Provider) Key() (string, bool) {
	if !p.IsReady() {
		return "", false
	}
	return p.key, true
}

func (p *Provider) Status() Status {
	return p.status
}

func (p *Provider) Mode() DeploymentMode {
	return p.mode
}

func (p *Provider) configure(key string) {
	if !ValidKey(key) {
		p.status = InvalidKey
		return
	}
	p.key = key
	if p.mode == Production {
		p.status = ProductionReady
	} else {
		p.status = Configured
	}
}

// ValidKey is a minimal structural check; a key that fails it is rejected
// outright and never stored.
func ValidKey(key string) bool {
	return strings.HasPrefix(key, "sk-") && len(key) > 20
}

// fromKeyFile reads an `OPENAI_API_KEY = <key>` line out of a config file,
// skipping placeholder values.
func fromKeyFile(loc string) (string, bool) {
	if loc == "" {
		return "", false
	}
	b, err := os.ReadFile(loc)
	if err != nil {
		return "", false
	}
	for _, line := range strings.Split(string(b), "\n") {
		if !strings.HasPrefix(line, keyLine) {
			continue
		}
		if _, v, ok := strings.Cut(line, "="); ok {
			key := strings.TrimSpace(v)
			if key != "" && !strings.HasPrefix(key, "<") {
				return key, true
			}
		}
	}
	return "", false
}

// fromKeystore reads a key from the account-named file in the keystore dir.
func fromKeystore(path, account string) (string, bool) {
	if path == "" {
		return "", false
	}
	b, err := os.ReadFile(filepath.Join(path, account))
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(b))
	return key, key != ""
}

// fromOverride reads a locally persisted plain-key file.
func fromOverride(loc string) (string, bool) {
	if loc == "" {
		return "", false
	}
	b, err := os.ReadFile(loc)
	if err != nil {
		return "", false
	}
	key := strings.TrimSpace(string(b))
	return key, key != ""
}

// fromEncrypted decodes the bundled key resource. The production build
// script writes this file; base64 stands in for real encryption until the
// pipeline supplies one.
func fromEncrypted(loc string) (string, bool) {
	if loc == "" {
		return "", false
	}
	b, err := os.ReadFile(loc)
	if err != nil {
		return "", false
	}
	dec, err := base64.StdEncoding.DecodeString(strings.TrimSpace(string(b)))
	if err != nil {
		log.Println("failed to decode bundled key:", err)
		return "", false
	}
	key := strings.TrimSpace(string(dec))
	return key, key != ""
}
