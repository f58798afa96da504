// Package bot answers the teamfinder slash commands. It turns interactions
// into matcher queries and miss-log calls and sends exactly one reply for
// each interaction.
package bot
