package bot

import (
	"context"

	"go.uber.org/zap"

	"teamfinder/internal/discord"
	"teamfinder/internal/match"
	"teamfinder/internal/misslog"
	"teamfinder/internal/roster"
	"teamfinder/internal/suggest"
)

// Responder sends the callback for an interaction.
type Responder interface {
	Respond(ctx context.Context, interactionID, token string, resp discord.InteractionResponse) error
}

// Bot serves the slash commands over one loaded book. It is safe for
// concurrent use.
type Bot struct {
	sets      []roster.TeamSet
	matcher   *match.Matcher
	index     *suggest.Index
	misses    misslog.Log
	responder Responder
	logger    *zap.Logger
	limit     int
}

// Option configures a Bot
type Option func(*Bot)

// WithLogger sets the bot logger.
func WithLogger(l *zap.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithMatcher replaces the default matcher.
func WithMatcher(m *match.Matcher) Option {
	return func(b *Bot) {
		if m != nil {
			b.matcher = m
		}
	}
}

// WithSuggestLimit caps autocomplete choices.
func WithSuggestLimit(n int) Option {
	return func(b *Bot) {
		if n > 0 {
			b.limit = n
		}
	}
}

// New creates a bot answering from book, recording misses to misses and
// replying through responder.
func New(book *roster.Book, misses misslog.Log, responder Responder, opts ...Option) *Bot {
	b := &Bot{
		matcher:   match.NewMatcher(match.DefaultConfig()),
		misses:    misses,
		responder: responder,
		logger:    zap.NewNop(),
		limit:     suggest.DefaultLimit,
	}

	if book != nil {
		b.sets = book.Sets
		b.index = suggest.NewIndex(book.DefenseNames())
	} else {
		b.index = suggest.NewIndex(nil)
	}

	for _, opt := range opts {
		opt(b)
	}

	b.limit = min(b.limit, discord.MaxChoices)

	return b
}

// HandleInteraction answers one interaction. It has the signature of
// discord.InteractionHandler.
func (b *Bot) HandleInteraction(ctx context.Context, in *discord.Interaction) {
	logger := b.logger.With(
		zap.String("interaction", in.ID),
		zap.String("command", in.CommandName()),
		zap.String("user", in.Username()),
	)

	var resp discord.InteractionResponse

	switch in.Type {
	case discord.InteractionApplicationCommand:
		resp = discord.NewMessageResponse(b.command(ctx, logger, in))

	case discord.InteractionAutocomplete:
		resp = discord.NewAutocompleteResponse(b.autocomplete(in))

	default:
		logger.Debug("ignoring interaction", zap.Int("type", int(in.Type)))
		return
	}

	if err := b.responder.Respond(ctx, in.ID, in.Token, resp); err != nil {
		logger.Error("failed to respond", zap.Error(err))
	}
}

func (b *Bot) command(ctx context.Context, logger *zap.Logger, in *discord.Interaction) string {
	switch in.CommandName() {
	case CommandTeam:
		var q match.Query
		for i, name := range unitOptions {
			q[i] = in.Option(name)
		}

		return b.team(ctx, logger, q)

	case CommandNotFound:
		return b.notFound(ctx, logger)

	case CommandClearNotFound:
		return b.clearNotFound(ctx, logger)

	default:
		logger.Warn("unknown command")
		return replyUnknown
	}
}

// Team looks up the defense in q and returns the reply. A miss is recorded
// with the names exactly as typed; a failed record still yields the miss
// reply.
func (b *Bot) Team(ctx context.Context, q match.Query) string {
	return b.team(ctx, b.logger, q)
}

// NotFound returns the miss log listing reply.
func (b *Bot) NotFound(ctx context.Context) string {
	return b.notFound(ctx, b.logger)
}

// ClearNotFound empties the miss log and returns the reply.
func (b *Bot) ClearNotFound(ctx context.Context) string {
	return b.clearNotFound(ctx, b.logger)
}

func (b *Bot) team(ctx context.Context, logger *zap.Logger, q match.Query) string {
	set, ok := b.matcher.FindMatch(q, b.sets)
	if ok {
		logger.Info("defense matched", zap.Stringer("query", q), zap.Stringer("set", set))
		return matchReply(set)
	}

	logger.Info("defense not found", zap.Stringer("query", q))

	if err := b.misses.Record(ctx, misslog.Entry(q)); err != nil {
		logger.Error("failed to record miss", zap.Error(err))
	}

	return replyNoMatch
}

func (b *Bot) notFound(ctx context.Context, logger *zap.Logger) string {
	content, err := b.misses.List(ctx)
	if err != nil {
		logger.Error("failed to list misses", zap.Error(err))
		return listFailedReply(err)
	}

	return missesReply(content)
}

func (b *Bot) clearNotFound(ctx context.Context, logger *zap.Logger) string {
	if err := b.misses.Clear(ctx); err != nil {
		logger.Error("failed to clear misses", zap.Error(err))
		return clearFailedReply(err)
	}

	logger.Info("miss log cleared")

	return replyCleared
}

func (b *Bot) autocomplete(in *discord.Interaction) []string {
	focused, ok := in.Focused()
	if !ok {
		return nil
	}

	return b.index.Lookup(focused.StringValue(), b.limit)
}
