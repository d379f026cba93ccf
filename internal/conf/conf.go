package conf

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the config structure.
type Config struct {
	Server   Server   `yaml:"server"`
	Spotify  Spotify  `yaml:"spotify"`
	OpenAI   OpenAI   `yaml:"openai"`
	Frontend Frontend `yaml:"frontend"`
}

// Server is the server config.
type Server struct {
	Addr    string `yaml:"addr"`
	BaseURL string `yaml:"base_url"`
}

// Spotify holds the OAuth client registration for the Spotify account service.
type Spotify struct {
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectURL  string `yaml:"redirect_url"` // Optional: if not set, auto-constructed from server.base_url
	SuccessURL   string `yaml:"success_url"`  // Where the browser lands after a successful login
	FailureURL   string `yaml:"failure_url"`  // Where the browser lands when the provider reports an error
}

// OpenAI is the completion provider config.
type OpenAI struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// Frontend lists the origins allowed to call the API cross-origin.
type Frontend struct {
	Origins []string `yaml:"origins"`
}

// GetRedirectURL returns the OAuth callback URL.
// If RedirectURL is explicitly configured, use it.
// Otherwise, construct from server base_url + hardcoded callback path.
func (s *Spotify) GetRedirectURL(serverBaseURL string) string {
	if s.RedirectURL != "" {
		return s.RedirectURL
	}
	return serverBaseURL + "/callback"
}

// Load loads config from file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	cfg.applyEnv()

	if cfg.Spotify.ClientID == "" || cfg.Spotify.ClientSecret == "" {
		return nil, fmt.Errorf("spotify client_id and client_secret are required")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://127.0.0.1:8080"
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.Spotify.SuccessURL == "" {
		c.Spotify.SuccessURL = "http://127.0.0.1:3000/"
	}
	if c.Spotify.FailureURL == "" {
		c.Spotify.FailureURL = "http://127.0.0.1:3000/error"
	}
	if len(c.Frontend.Origins) == 0 {
		c.Frontend.Origins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
}

// applyEnv overrides file config from env vars if present.
func (c *Config) applyEnv() {
	if addr := os.Getenv("SERVER_ADDR"); addr != "" {
		c.Server.Addr = addr
	}
	if baseURL := os.Getenv("SERVER_BASE_URL"); baseURL != "" {
		c.Server.BaseURL = baseURL
	}
	if id := os.Getenv("SPOTIFY_CLIENT_ID"); id != "" {
		c.Spotify.ClientID = id
	}
	if secret := os.Getenv("SPOTIFY_CLIENT_SECRET"); secret != "" {
		c.Spotify.ClientSecret = secret
	}
	if redirectURL := os.Getenv("SPOTIFY_REDIRECT_URL"); redirectURL != "" {
		c.Spotify.RedirectURL = redirectURL
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		c.OpenAI.APIKey = key
	}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		c.Frontend.Origins = []string{frontendURL}
	}
}
