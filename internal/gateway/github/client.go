// Package github implements the gateway against the GitHub REST API.
package github

import (
	"context"
	"fmt"

	"github.com/usf-cs272-fall2021/action-request-grade/config"

	gh "github.com/google/go-github/v66/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// GitHub wraps an authenticated API client and configuration.
type GitHub struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	api     *gh.Client
	cfg     config.GitHubConfig
}

// New creates a GitHub gateway instance.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config) *GitHub {
	return &GitHub{
		baseCtx: ctx,
		log:     log.Named("gateway.github"),
		cfg:     cfg.GitHub,
	}
}

// OnStart builds the authenticated client and checks API reachability.
func (g *GitHub) OnStart(_ context.Context) error {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: g.cfg.Token})
	httpClient := oauth2.NewClient(g.baseCtx, src)
	httpClient.Timeout = g.cfg.RequestTimeout

	api := gh.NewClient(httpClient)
	if g.cfg.BaseURL != "" {
		enterprise, err := api.WithEnterpriseURLs(g.cfg.BaseURL, g.cfg.BaseURL)
		if err != nil {
			return fmt.Errorf("set api base url: %w", err)
		}
		api = enterprise
	}
	g.api = api

	pingCtx, cancel := context.WithTimeout(g.baseCtx, g.cfg.RequestTimeout)
	defer cancel()
	if _, _, err := g.api.Zen(pingCtx); err != nil {
		return fmt.Errorf("github api ping: %w", err)
	}

	g.log.Infow("gateway started", "owner", g.cfg.Owner, "repo", g.cfg.Repo)
	return nil
}

// OnStop releases gateway resources.
func (g *GitHub) OnStop(_ context.Context) error { return nil }
