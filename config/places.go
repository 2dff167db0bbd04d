package config

import "os"

type PlacesConfig struct {
	APIKey  string
	BaseURL string
}

// GetPlacesConfig reads the Google Places credentials. BaseURL is
// overridable so tests and staging can point at a stub server.
func GetPlacesConfig() *PlacesConfig {
	return &PlacesConfig{
		APIKey:  os.Getenv("GOOGLE_PLACES_API_KEY"),
		BaseURL: os.Getenv("GOOGLE_PLACES_BASE_URL"),
	}
}
