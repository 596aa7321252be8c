package config

import "time"

const (
	apiBaseURLVar = "API_BASE_URL"
	apiTimeoutVar = "API_TIMEOUT_SECONDS"
)

// Backend configures the connection to the finsight analysis service.
type Backend struct{}

var _ BackendConfig = Backend{}

// GetAPIBaseURL returns the base URL of the analysis backend
// (e.g., "https://api.finsight.example.com")
func (Backend) GetAPIBaseURL() string {
	return GetEnv(apiBaseURLVar, "http://localhost:8000")
}

func (Backend) GetAPITimeout() time.Duration {
	seconds := GetEnv(apiTimeoutVar, "30")
	d, err := time.ParseDuration(seconds + "s")
	if err != nil {
		return 30 * time.Second
	}
	return d
}
