package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/phanxgames/tableau/internal/config"
	"github.com/phanxgames/tableau/internal/logging"
	"github.com/phanxgames/tableau/internal/project"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string
	outputFlag   *string

	config      *config.Config
	configPath  string
	configFound bool
	logger      *slog.Logger
}

func newCommandContext(configFlag, logLevelFlag, outputFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
		outputFlag:   outputFlag,
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, path, found, err := config.Load(strings.TrimSpace(*c.configFlag))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if level := strings.TrimSpace(*c.logLevelFlag); level != "" {
		cfg.Logging.Level = strings.ToLower(level)
	}
	if out := strings.TrimSpace(*c.outputFlag); out != "" {
		cfg.Output.Format = strings.ToLower(out)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	logger, err := logging.NewFromConfig(cfg, stderr, colorEnabled(cfg.Output.Color, stderr))
	if err != nil {
		return err
	}
	c.config = cfg
	c.configPath = path
	c.configFound = found
	c.logger = logger.With("command", cmd.Name())
	return nil
}

func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func (c *commandContext) cfg() *config.Config {
	if c.config == nil {
		def := config.Default()
		c.config = &def
	}
	return c.config
}

func (c *commandContext) jsonOutput() bool {
	return c.cfg().Output.Format == "json"
}

func (c *commandContext) colorize(w io.Writer) bool {
	return colorEnabled(c.cfg().Output.Color, w)
}

func (c *commandContext) loadProject(path string) (*project.Project, error) {
	start := time.Now()
	p, err := project.Load(path)
	if err != nil {
		return nil, err
	}
	c.log().Debug("loaded project",
		"path", path,
		"states", len(p.States),
		"transitions", len(p.Transitions),
		"chains", len(p.Chains),
		"took", time.Since(start),
	)
	return p, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
