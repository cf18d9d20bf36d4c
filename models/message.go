package models

import (
	"context"
	"time"
)

// ButtonStyle is the Discord button colour.
type ButtonStyle int

const (
	ButtonPrimary   ButtonStyle = 1
	ButtonSecondary ButtonStyle = 2
	ButtonSuccess   ButtonStyle = 3
	ButtonDanger    ButtonStyle = 4
)

// Button is an interactive control attached to a message.
type Button struct {
	Label    string
	CustomID string
	Style    ButtonStyle
	Emoji    string
}

type EmbedAuthor struct {
	Name    string
	URL     string
	IconURL string
}

type EmbedField struct {
	Name   string
	Value  string
	Inline bool
}

// Embed is a rich content block of a message.
type Embed struct {
	Title       string
	Description string
	URL         string
	Color       int
	Author      *EmbedAuthor
	Thumbnail   string
	Image       string
	Fields      []EmbedField
	Footer      string
	Timestamp   *time.Time
}

// Message is a notification payload independent of the chat platform.
// Mentions lists the user ids that may be pinged by Content.
type Message struct {
	Content  string
	Embeds   []Embed
	Buttons  []Button
	Mentions []int64
}

// InteractionType is the Discord interaction kind.
type InteractionType int

const (
	InteractionPing             InteractionType = 1
	InteractionApplicationCmd   InteractionType = 2
	InteractionMessageComponent InteractionType = 3
)

// PermissionAdministrator is the Discord ADMINISTRATOR permission bit.
const PermissionAdministrator uint64 = 1 << 3

// Responder acknowledges an interaction. Each interaction is answered at
// most once; later calls are sent as followups or ignored.
type Responder interface {
	// Acknowledge answers without a visible message.
	Acknowledge(ctx context.Context) error
	// Reply answers with a message, visible only to the invoker when
	// ephemeral is set.
	Reply(ctx context.Context, msg Message, ephemeral bool) error
}

// Command is a decoded slash command invocation. Options holds the leaf
// option values of the invoked subcommand.
type Command struct {
	Name       string
	Subcommand string
	Options    map[string]string
}

// Interaction is an inbound event produced by a user.
type Interaction struct {
	ID          int64
	Token       string
	Type        InteractionType
	ChannelID   int64
	MessageID   int64
	UserID      int64
	Username    string
	Permissions uint64
	CustomID    string
	Command     Command

	Responder Responder
}

// IsAdministrator reports whether the invoker holds the administrator
// permission in the guild the interaction came from.
func (i Interaction) IsAdministrator() bool {
	return i.Permissions&PermissionAdministrator != 0
}

// CommandOptionType is the Discord application command option type.
type CommandOptionType int

const (
	OptionSubcommand CommandOptionType = 1
	OptionString     CommandOptionType = 3
)

type CommandChoice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type CommandOption struct {
	Type        CommandOptionType `json:"type"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Required    bool              `json:"required,omitempty"`
	Choices     []CommandChoice   `json:"choices,omitempty"`
	Options     []CommandOption   `json:"options,omitempty"`
}

// CommandDefinition is a global slash command registered on start.
// DefaultMemberPermissions is the decimal permission bit set a member needs
// to see the command; empty means everyone.
type CommandDefinition struct {
	Name                     string          `json:"name"`
	Description              string          `json:"description"`
	Options                  []CommandOption `json:"options,omitempty"`
	DefaultMemberPermissions string          `json:"default_member_permissions,omitempty"`
}
