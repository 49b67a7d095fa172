package model

// Environment is the deployment environment name from config.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)

// Environments lists the accepted environment names.
var Environments = []Environment{EnvironmentDevelopment, EnvironmentStaging, EnvironmentProduction}
