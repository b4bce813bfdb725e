package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"proot/internal/config"
	"proot/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Color   string        `help:"When to color the output" enum:"auto,always,never" default:"auto" env:"PROOT_COLOR"`
	Limit   int           `help:"Maximum number of PRs to fetch per repository" default:"30"`
	Repo    []string      `help:"Repository to graph as OWNER/REPO (repeatable, defaults to the current directory)" short:"R" env:"PROOT_REPO"`
	Sort    bool          `help:"Sort stacked branches by name instead of PR list order"`
	State   string        `help:"PR state to include" enum:"open,closed,merged,all" default:"open" env:"PROOT_STATE"`
	Timeout time.Duration `help:"Timeout for each gh invocation" default:"30s"`

	Graph  GraphCmd  `cmd:"" help:"Show the PR graph, or open PR_NUMBER on the web (default)" default:"withargs"`
	Check  CheckCmd  `cmd:"check" help:"Check if gh cli is installed"`
	Filter FilterCmd `cmd:"filter" help:"Filters PRs"`
	Pick   PickCmd   `cmd:"pick" help:"Pick a PR from the list and open it on the web"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Stdout    io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	c.applySettings(explicitFlags(kctx))

	if _, err := logging.Initialize(logging.Config{
		Debug:       c.Debug,
		File:        c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	}); err != nil {
		return err
	}
	logging.Logger.Debug("CLI configured",
		"color", c.Color,
		"limit", c.Limit,
		"repos", c.Repo,
		"sort", c.Sort,
		"state", c.State,
		"timeout", c.Timeout)

	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}

	// Container is created after logging so adapters log to the right place
	if c.Container == nil {
		c.Container = NewContainer(c.Timeout)
	}

	return nil
}

// explicitFlags returns the names of the flags given on the command line
func explicitFlags(kctx *kong.Context) map[string]bool {
	explicit := make(map[string]bool)
	if kctx == nil {
		return explicit
	}
	for _, p := range kctx.Path {
		if p.Flag != nil && !p.Resolved {
			explicit[p.Flag.Name] = true
		}
	}
	return explicit
}

// applySettings fills in values from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults. A setting is
// skipped when its flag is in explicit or its env var is set.
func (c *CLI) applySettings(explicit map[string]bool) {
	if c.settings == nil {
		return
	}
	s := c.settings

	unset := func(flag, env string) bool {
		if explicit[flag] {
			return false
		}
		if env == "" {
			return true
		}
		_, hasEnv := os.LookupEnv(env)
		return !hasEnv
	}

	if s.MaxLogFiles != nil && unset("max-log-files", "PROOT_MAX_LOG_FILES") {
		c.MaxLogFiles = *s.MaxLogFiles
	}
	if s.Debug != nil && unset("debug", "PROOT_DEBUG") {
		c.Debug = *s.Debug
	}
	if s.Color != "" && unset("color", "PROOT_COLOR") {
		c.Color = s.Color
	}
	if s.State != "" && unset("state", "PROOT_STATE") {
		c.State = s.State
	}
	if len(s.Repos) > 0 && unset("repo", "PROOT_REPO") {
		c.Repo = append([]string(nil), s.Repos...)
	}
	if s.Limit != nil && unset("limit", "") {
		c.Limit = *s.Limit
	}
	if s.SortChildren != nil && unset("sort", "") {
		c.Sort = *s.SortChildren
	}
	if s.TimeoutSeconds != nil && unset("timeout", "") {
		c.Timeout = time.Duration(*s.TimeoutSeconds) * time.Second
	}
}

// firstRepo returns the repository used by single-repository commands
func (c *CLI) firstRepo() string {
	if len(c.Repo) == 0 {
		return ""
	}
	return c.Repo[0]
}

func (c *CLI) printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout, format, args...)
}
