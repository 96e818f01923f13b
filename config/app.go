package config

import (
	"sync"
)

const (
	DefaultPort              = "8080"
	DefaultProductDataURL    = "sample/data/products.json"
	DefaultTailwindScriptURL = "https://cdn.tailwindcss.com"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName string
	Port    string
	Env     string
	Debug   bool
	// BaseURL is where this server reaches itself; a relative ProductDataURL
	// is resolved against it.
	BaseURL           string
	ProductDataURL    string
	TailwindScriptURL string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		port := GetEnv("PORT", DefaultPort)
		AppConfig = &Config{
			AppName:           GetEnv("APP_NAME", "storefront.GO"),
			Port:              port,
			BaseURL:           GetEnv("BASE_URL", "http://127.0.0.1:"+port+"/"),
			Env:               GetEnv("APP_ENV", "production"),
			Debug:             GetEnv("DEBUG", "") == "true",
			ProductDataURL:    GetEnv("PRODUCT_DATA_URL", DefaultProductDataURL),
			TailwindScriptURL: GetEnv("TAILWIND_SCRIPT_URL", DefaultTailwindScriptURL),
		}
	})
}

// Get returns AppConfig, loading it first if nobody has yet.
func Get() *Config {
	LoadAppConfig()
	return AppConfig
}
