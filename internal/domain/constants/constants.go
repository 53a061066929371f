// Package constants defines shared environment and provider identifiers.
package constants

const (
	// EnvDevelop identifies the local development environment.
	EnvDevelop = "develop"
	// EnvProduction identifies the production environment.
	EnvProduction = "production"
)

const (
	// PubSubProviderGoogle selects Google Cloud Pub/Sub as the event transport.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal selects the local HTTP push simulator for development.
	PubSubProviderLocal = "local"
)
