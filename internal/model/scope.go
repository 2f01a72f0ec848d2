package model

// Scope carries the identity of the caller through usecases.
type Scope struct {
	Username  string
	SessionID string
}

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)
