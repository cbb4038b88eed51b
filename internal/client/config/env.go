package config

import "os"

const (
	envServerURL = "FLOWGATE_API_URL"
	envProxyURL  = "FLOWGATE_PROXY_URL"
)

func parseEnv(cfg *Config) {
	setIfNotEmpty(&cfg.ServerURL, os.Getenv(envServerURL))
	setIfNotEmpty(&cfg.ProxyURL, os.Getenv(envProxyURL))
}
