// Package config handles build configuration loading and validation.
//
// Configuration is loaded from a YAML file and validated using struct tags.
// It describes the contributor and dataset a collaborator attributes an
// imported feed to, plus an optional identifier prefix for namespacing
// several feeds into one model.
package config
