package bot

import (
	"fmt"

	"teamfinder/internal/discord"
)

// Command names.
const (
	CommandTeam          = "team"
	CommandNotFound      = "notfound"
	CommandClearNotFound = "clear_not_found"
)

// unitOptions are the option names of the team command, in query order.
var unitOptions = [3]string{"unit1", "unit2", "unit3"}

// Commands returns the slash command definitions to register.
func Commands() []discord.ApplicationCommand {
	units := make([]discord.ApplicationCommandOption, 0, len(unitOptions))
	for i, name := range unitOptions {
		units = append(units, discord.ApplicationCommandOption{
			Type:         discord.OptionString,
			Name:         name,
			Description:  fmt.Sprintf("Defense Unit %d", i+1),
			Required:     true,
			Autocomplete: true,
		})
	}

	return []discord.ApplicationCommand{
		{
			Name:        CommandTeam,
			Description: "Find attack team for defense units",
			Type:        discord.CommandTypeChatInput,
			Options:     units,
		},
		{
			Name:        CommandNotFound,
			Description: "Show all unmatched defense unit sets",
			Type:        discord.CommandTypeChatInput,
		},
		{
			Name:        CommandClearNotFound,
			Description: "Clear all logged unmatched defense teams.",
			Type:        discord.CommandTypeChatInput,
		},
	}
}
