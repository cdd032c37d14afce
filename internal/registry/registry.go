// Package registry carries the service-registry configuration kept for
// parity with the deployment environment.
//
// The mapping is loaded once at process start and never consulted by the
// overlay pipeline; it exists so operational tooling that reads the same
// configuration keeps working. Nothing here performs network I/O.
package registry

import "os"

// ServiceConfig describes one downstream inference service endpoint.
type ServiceConfig struct {
	URL     string
	Data    string
	Headers map[string]string
	Service string
}

// Config is the static service-registry mapping.
type Config struct {
	ServiceHost   string
	ServicePort   int
	ServiceDBPath string
	Services      map[string]ServiceConfig
}

// Load builds the registry with its fixed defaults. The tuberculosis
// service URL can be overridden with the DL_URL_TB environment variable.
func Load() *Config {
	tbURL := os.Getenv("DL_URL_TB")
	if tbURL == "" {
		tbURL = "http://tuberculosis_service:50001/deep-learning/service/tuberculosis/image_binary"
	}

	return &Config{
		ServiceHost:   "0.0.0.0",
		ServicePort:   50011,
		ServiceDBPath: "config/service_db_v8.csv",
		Services: map[string]ServiceConfig{
			"tuberculosis_service": {
				URL:     tbURL,
				Headers: map[string]string{"Content-Type": "application/x-image"},
				Service: "tuberculosis_service",
			},
		},
	}
}
