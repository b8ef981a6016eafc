package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const maxUpstreamTimeout = 30 * time.Minute

// ValidateTimeout validates timeout duration
func ValidateTimeout(timeout time.Duration, name string) error {
	if timeout <= 0 {
		return fmt.Errorf("%s timeout must be positive", name)
	}
	if timeout > maxUpstreamTimeout {
		return fmt.Errorf("%s timeout too large (max 30 minutes)", name)
	}
	return nil
}

// ValidateURL validates URL format. Empty values are accepted; callers
// decide whether a URL is required.
func ValidateURL(url string, name string) error {
	if url == "" {
		return nil
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return fmt.Errorf("%s URL must start with http:// or https://", name)
	}
	return nil
}

// ValidatePort validates port number. Port 0 asks the OS for a free port.
func ValidatePort(port string, name string) error {
	if port == "" {
		return fmt.Errorf("%s port is required", name)
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 0 || n > 65535 {
		return fmt.Errorf("%s port invalid: %q", name, port)
	}
	return nil
}

// Validate checks the loaded configuration
func (c *Config) Validate() error {
	if err := ValidateTimeout(c.UpstreamTimeout, "upstream"); err != nil {
		return err
	}
	if err := ValidatePort(c.Server.Port, "server"); err != nil {
		return err
	}
	if err := ValidateURL(c.Providers.Azure.Endpoint, "Azure endpoint"); err != nil {
		return err
	}
	if err := ValidateURL(c.Providers.OpenAI.BaseURL, "OpenAI base"); err != nil {
		return err
	}
	if err := ValidateURL(c.Providers.Gemini.BaseURL, "Gemini base"); err != nil {
		return err
	}
	return nil
}
