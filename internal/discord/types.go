package discord

import (
	"fmt"
)

// InteractionType identifies what triggered an interaction.
type InteractionType int

const (
	InteractionPing               InteractionType = 1
	InteractionApplicationCommand InteractionType = 2
	InteractionMessageComponent   InteractionType = 3
	InteractionAutocomplete       InteractionType = 4
)

// ResponseType is the callback type of an interaction response.
type ResponseType int

const (
	ResponsePong                     ResponseType = 1
	ResponseChannelMessageWithSource ResponseType = 4
	ResponseAutocompleteResult       ResponseType = 8
)

// OptionType is the value type of a slash command option.
type OptionType int

const (
	OptionString OptionType = 3
)

// CommandTypeChatInput marks a slash command.
const CommandTypeChatInput = 1

// MessageFlagEphemeral makes a reply visible to the invoking user only.
const MessageFlagEphemeral = 1 << 6

// MaxMessageLength is the longest message content Discord accepts.
const MaxMessageLength = 2000

// MaxChoices is the most autocomplete choices Discord accepts.
const MaxChoices = 25

// ApplicationCommand is a command definition sent at registration.
type ApplicationCommand struct {
	Name        string                     `json:"name"`
	Description string                     `json:"description"`
	Type        int                        `json:"type,omitempty"`
	Options     []ApplicationCommandOption `json:"options,omitempty"`
}

// ApplicationCommandOption is one parameter of a command definition.
type ApplicationCommandOption struct {
	Type         OptionType `json:"type"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Required     bool       `json:"required,omitempty"`
	Autocomplete bool       `json:"autocomplete,omitempty"`
}

// User is the subset of a Discord user the bot reads.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// Member wraps the user when an interaction comes from a guild.
type Member struct {
	User *User `json:"user,omitempty"`
}

// Interaction is an INTERACTION_CREATE payload.
type Interaction struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"application_id"`
	Type          InteractionType `json:"type"`
	Token         string          `json:"token"`
	GuildID       string          `json:"guild_id,omitempty"`
	ChannelID     string          `json:"channel_id,omitempty"`
	Data          *CommandData    `json:"data,omitempty"`
	Member        *Member         `json:"member,omitempty"`
	User          *User           `json:"user,omitempty"`
}

// CommandData carries the invoked command and its options.
type CommandData struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Type    int             `json:"type"`
	Options []CommandOption `json:"options,omitempty"`
}

// CommandOption is a value the user supplied for a command option.
type CommandOption struct {
	Name    string     `json:"name"`
	Type    OptionType `json:"type"`
	Value   any        `json:"value,omitempty"`
	Focused bool       `json:"focused,omitempty"`
}

// StringValue returns the option value as text.
func (o CommandOption) StringValue() string {
	switch v := o.Value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// CommandName returns the invoked command name, or "".
func (in *Interaction) CommandName() string {
	if in.Data == nil {
		return ""
	}

	return in.Data.Name
}

// Option returns the named option's text value.
func (in *Interaction) Option(name string) string {
	if in.Data == nil {
		return ""
	}

	for _, o := range in.Data.Options {
		if o.Name == name {
			return o.StringValue()
		}
	}

	return ""
}

// Focused returns the option being typed during autocomplete.
func (in *Interaction) Focused() (CommandOption, bool) {
	if in.Data == nil {
		return CommandOption{}, false
	}

	for _, o := range in.Data.Options {
		if o.Focused {
			return o, true
		}
	}

	return CommandOption{}, false
}

// Username returns the invoking user's name, from the member in guilds.
func (in *Interaction) Username() string {
	if in.Member != nil && in.Member.User != nil {
		return in.Member.User.Username
	}

	if in.User != nil {
		return in.User.Username
	}

	return ""
}

// InteractionResponse is the body of an interaction callback.
type InteractionResponse struct {
	Type ResponseType `json:"type"`
	Data any          `json:"data,omitempty"`
}

// MessageData is the data of a channel message response.
type MessageData struct {
	Content string `json:"content"`
	Flags   int    `json:"flags,omitempty"`
}

// AutocompleteData is the data of an autocomplete response. Choices is
// always sent, even when empty.
type AutocompleteData struct {
	Choices []Choice `json:"choices"`
}

// Choice is one autocomplete suggestion.
type Choice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// NewMessageResponse builds a channel message response.
func NewMessageResponse(content string) InteractionResponse {
	return InteractionResponse{
		Type: ResponseChannelMessageWithSource,
		Data: MessageData{Content: content},
	}
}

// NewAutocompleteResponse builds an autocomplete response from names.
func NewAutocompleteResponse(names []string) InteractionResponse {
	if len(names) > MaxChoices {
		names = names[:MaxChoices]
	}

	choices := make([]Choice, 0, len(names))
	for _, n := range names {
		choices = append(choices, Choice{Name: n, Value: n})
	}

	return InteractionResponse{
		Type: ResponseAutocompleteResult,
		Data: AutocompleteData{Choices: choices},
	}
}
