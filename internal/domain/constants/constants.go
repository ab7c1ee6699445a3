// Package constants defines shared application-level constants.
package constants

const (
	// EnvDevelop is the development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

const (
	// PubSubProviderLocal routes events to a local HTTP endpoint that mimics
	// the Pub/Sub push format. Intended for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle routes events through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)
