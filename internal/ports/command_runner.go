package ports

import "context"

// CommandRunner executes an external command and returns its standard output
type CommandRunner interface {
	Run(ctx context.Context, name string, args []string) ([]byte, error)
}
