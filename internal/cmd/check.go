package cmd

import "context"

// CheckCmd verifies that gh is installed
type CheckCmd struct{}

// Run executes the check command
func (c *CheckCmd) Run(cli *CLI) error {
	version, err := cli.Container.GraphService.CheckHealth(context.Background())
	if err != nil {
		return err
	}

	cli.success("gh cli is installed")
	if version != "" {
		cli.printf("%s\n", version)
	}
	return nil
}
