package constants

// Pub/Sub providers accepted in configuration
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
