package cmd

import (
	"time"

	adaptergh "proot/internal/adapters/gh"
	"proot/internal/ports"
	"proot/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	GraphService *services.GraphService
}

// NewContainer creates a new Container backed by the gh CLI
func NewContainer(timeout time.Duration) *Container {
	return NewContainerWithSource(adaptergh.NewCLI(adaptergh.NewExecRunner()), timeout)
}

// NewContainerWithSource creates a new Container using the given PR source
func NewContainerWithSource(source ports.PullRequestSource, timeout time.Duration) *Container {
	return &Container{
		GraphService: services.NewGraphService(source, timeout),
	}
}
