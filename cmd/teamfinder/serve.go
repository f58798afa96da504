package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"teamfinder/internal/bot"
	"teamfinder/internal/discord"
	"teamfinder/internal/match"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Discord bot",
		Long: `Loads the counter sheet, registers the slash commands and serves
interactions over the Discord gateway until interrupted.

Requires DISCORD_TOKEN. DISCORD_GUILD_ID registers the commands on one guild,
which takes effect immediately; otherwise they are registered globally.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return a.serve(ctx)
		},
	}
}

func (a *app) serve(ctx context.Context) error {
	if err := a.cfg.RequireDiscord(); err != nil {
		return err
	}

	book, err := a.loadBook()
	if err != nil {
		return err
	}

	misses, err := a.openMissLog()
	if err != nil {
		return err
	}
	defer misses.Close()

	dc := a.cfg.Discord
	client := discord.NewClient(dc.Token, discord.WithAPIBaseURL(dc.APIBaseURL))

	appID := dc.ApplicationID
	if appID == "" {
		appID, err = client.ApplicationID(ctx)
		if err != nil {
			return fmt.Errorf("resolve application id: %w", err)
		}
	}

	if err := client.RegisterCommands(ctx, appID, dc.GuildID, bot.Commands()); err != nil {
		return fmt.Errorf("register commands: %w", err)
	}

	gatewayURL, err := client.GatewayURL(ctx)
	if err != nil {
		a.logger.Warn("gateway discovery failed, using default", zap.Error(err))
	}

	b := bot.New(book, misses, client,
		bot.WithLogger(a.logger.Named("bot")),
		bot.WithMatcher(match.NewMatcher(a.cfg.MatcherConfig())),
		bot.WithSuggestLimit(a.cfg.Suggest.Limit),
	)

	gw := discord.NewGateway(dc.Token, b.HandleInteraction,
		discord.WithGatewayURL(gatewayURL),
		discord.WithLogger(a.logger.Named("gateway")),
	)

	a.logger.Info("bot starting",
		zap.String("application", appID),
		zap.String("guild", dc.GuildID),
		zap.Stringer("strategy", a.cfg.MatcherConfig().Strategy),
	)

	if err := gw.Run(ctx); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}

	a.logger.Info("bot stopped")

	return nil
}
