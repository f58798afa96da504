// Package discord is a small Discord client covering what a slash command
// bot needs: command registration and interaction callbacks over REST, and
// an interaction feed over the websocket gateway.
package discord
