package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/openrobot/openrobot-go/internal/config"
	"github.com/openrobot/openrobot-go/openrobot"
	"github.com/openrobot/openrobot-go/openrobot/credential"
)

type globalFlags struct {
	config      string
	token       string
	tries       int
	noRateLimit bool
	json        bool
	debug       bool
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, _, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = path
	})
	return c.config, c.configErr
}

// newClient builds an API client from flags layered over the config file.
func (c *commandContext) newClient(cmd *cobra.Command) (*openrobot.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	opts := []openrobot.Option{
		openrobot.WithCredentialResolver(credential.Chain{
			credential.Env(credential.EnvVar),
			credential.DotEnv(".env"),
			credential.Static(cfg.Token),
		}),
		openrobot.WithHandleRateLimit(cfg.HandleRateLimit && !c.flags.noRateLimit),
	}

	if token := strings.TrimSpace(c.flags.token); token != "" {
		opts = append(opts, openrobot.WithToken(token))
	}

	tries := cfg.Tries
	if cmd.Flags().Changed("tries") {
		tries = c.flags.tries
	}
	opts = append(opts, openrobot.WithTries(tries))

	if cfg.IgnoreWarning {
		opts = append(opts, openrobot.WithIgnoreWarning())
	}
	if d := cfg.TimeoutDuration(); d > 0 {
		opts = append(opts, openrobot.WithTimeout(d))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openrobot.WithBaseURL(cfg.BaseURL))
	}

	level := slog.LevelWarn
	if c.flags.debug {
		level = slog.LevelDebug
	}
	opts = append(opts, openrobot.WithLogger(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

	return openrobot.NewClient(opts...)
}

// withClient runs fn with a freshly built client.
func (c *commandContext) withClient(cmd *cobra.Command, fn func(*openrobot.Client) error) error {
	client, err := c.newClient(cmd)
	if err != nil {
		return err
	}
	return fn(client)
}
