package ratelimit

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

const defaultLimit = 600

// EndpointConfig sets the limit for one method and path.
// A Path ending in "/" matches every path below it.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int // requests per Window
	Window time.Duration
	Burst  int // bucket capacity, Limit when 0
}

// LoadConfig reads RATE_LIMIT_* environment variables over DefaultConfig.
func LoadConfig() *Config {
	v := viper.New()
	v.SetEnvPrefix("RATE_LIMIT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := DefaultConfig()
	v.SetDefault("enabled", def.Enabled)
	v.SetDefault("default_limit", def.DefaultLimit)
	v.SetDefault("default_window", def.DefaultWindow)
	v.SetDefault("cleanup_interval", def.CleanupInterval)
	v.SetDefault("idle_ttl", def.IdleTTL)
	v.SetDefault("whitelist", "")
	v.SetDefault("blacklist", "")

	if !v.GetBool("enabled") {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    v.GetInt("default_limit"),
		DefaultWindow:   v.GetDuration("default_window"),
		CleanupInterval: v.GetDuration("cleanup_interval"),
		IdleTTL:         v.GetDuration("idle_ttl"),
		Whitelist:       parseIPList(v.GetString("whitelist")),
		Blacklist:       parseIPList(v.GetString("blacklist")),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the endpoint tiers. Uploads and
// embedding-backed predictions are the most expensive; health is unmetered.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/analyze", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/parse_resume", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/analyze_text", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/ats_check", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/analyses/", Method: "GET", Limit: 120, Window: time.Minute, Burst: 20},
		{Path: "/analyses/", Method: "DELETE", Limit: 30, Window: time.Minute, Burst: 5},
	}
}

// parseIPList parses a comma-separated list of client IPs.
func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
