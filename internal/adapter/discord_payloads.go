package adapter

import (
	"strconv"
	"time"

	"github.com/Sigi3012/Midnight/models"
)

const (
	componentActionRow = 1
	componentButton    = 2

	maxButtonsPerRow = 5

	// FlagEphemeral makes an interaction reply visible to the invoker only.
	FlagEphemeral = 1 << 6
)

// DiscordMessage is the JSON body of a Discord message create, followup or
// interaction callback.
type DiscordMessage struct {
	Content         string                 `json:"content,omitempty"`
	Embeds          []discordEmbed         `json:"embeds,omitempty"`
	Components      []discordComponent     `json:"components,omitempty"`
	AllowedMentions discordAllowedMentions `json:"allowed_mentions"`
	Flags           int                    `json:"flags,omitempty"`
}

type discordEmbed struct {
	Title       string              `json:"title,omitempty"`
	Description string              `json:"description,omitempty"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color,omitempty"`
	Author      *discordEmbedAuthor `json:"author,omitempty"`
	Thumbnail   *discordMedia       `json:"thumbnail,omitempty"`
	Image       *discordMedia       `json:"image,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Footer      *discordFooter      `json:"footer,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedAuthor struct {
	Name    string `json:"name"`
	URL     string `json:"url,omitempty"`
	IconURL string `json:"icon_url,omitempty"`
}

type discordMedia struct {
	URL string `json:"url"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline,omitempty"`
}

type discordFooter struct {
	Text string `json:"text"`
}

type discordComponent struct {
	Type       int                `json:"type"`
	Style      int                `json:"style,omitempty"`
	Label      string             `json:"label,omitempty"`
	CustomID   string             `json:"custom_id,omitempty"`
	Emoji      *discordEmoji      `json:"emoji,omitempty"`
	Components []discordComponent `json:"components,omitempty"`
}

type discordEmoji struct {
	Name string `json:"name"`
}

// discordAllowedMentions restricts pings to the listed users. An empty Parse
// list disables @everyone and role pings.
type discordAllowedMentions struct {
	Parse []string `json:"parse"`
	Users []string `json:"users,omitempty"`
}

type discordSnowflake struct {
	ID int64 `json:"id,string"`
}

// NewDiscordMessage converts a platform independent message into its
// Discord body. Buttons are packed into action rows of five.
func NewDiscordMessage(msg models.Message, ephemeral bool) DiscordMessage {
	out := DiscordMessage{
		Content:         msg.Content,
		AllowedMentions: discordAllowedMentions{Parse: []string{}},
	}
	if ephemeral {
		out.Flags = FlagEphemeral
	}

	for _, id := range msg.Mentions {
		out.AllowedMentions.Users = append(out.AllowedMentions.Users, strconv.FormatInt(id, 10))
	}

	for _, e := range msg.Embeds {
		out.Embeds = append(out.Embeds, newDiscordEmbed(e))
	}

	for start := 0; start < len(msg.Buttons); start += maxButtonsPerRow {
		end := min(start+maxButtonsPerRow, len(msg.Buttons))
		row := discordComponent{Type: componentActionRow}
		for _, b := range msg.Buttons[start:end] {
			button := discordComponent{
				Type:     componentButton,
				Style:    int(b.Style),
				Label:    b.Label,
				CustomID: b.CustomID,
			}
			if b.Emoji != "" {
				button.Emoji = &discordEmoji{Name: b.Emoji}
			}
			row.Components = append(row.Components, button)
		}
		out.Components = append(out.Components, row)
	}

	return out
}

func newDiscordEmbed(e models.Embed) discordEmbed {
	out := discordEmbed{
		Title:       e.Title,
		Description: e.Description,
		URL:         e.URL,
		Color:       e.Color,
	}
	if e.Author != nil {
		out.Author = &discordEmbedAuthor{Name: e.Author.Name, URL: e.Author.URL, IconURL: e.Author.IconURL}
	}
	if e.Thumbnail != "" {
		out.Thumbnail = &discordMedia{URL: e.Thumbnail}
	}
	if e.Image != "" {
		out.Image = &discordMedia{URL: e.Image}
	}
	for _, f := range e.Fields {
		out.Fields = append(out.Fields, discordEmbedField{Name: f.Name, Value: f.Value, Inline: f.Inline})
	}
	if e.Footer != "" {
		out.Footer = &discordFooter{Text: e.Footer}
	}
	if e.Timestamp != nil {
		out.Timestamp = e.Timestamp.UTC().Format(time.RFC3339)
	}

	return out
}

// Interaction callback types.
const (
	CallbackPong                   = 1
	CallbackChannelMessage         = 4
	CallbackDeferredChannelMessage = 5
	CallbackDeferredUpdateMessage  = 6
)

// InteractionResponse is the initial answer to an interaction, written as
// the body of the interaction request.
type InteractionResponse struct {
	Type int             `json:"type"`
	Data *DiscordMessage `json:"data,omitempty"`
}

// PongResponse answers the endpoint verification ping.
func PongResponse() InteractionResponse {
	return InteractionResponse{Type: CallbackPong}
}

// MessageResponse answers with msg.
func MessageResponse(msg models.Message, ephemeral bool) InteractionResponse {
	data := NewDiscordMessage(msg, ephemeral)
	return InteractionResponse{Type: CallbackChannelMessage, Data: &data}
}

// DeferredResponse acknowledges an interaction whose answer comes later.
// Components are acknowledged without touching the message; commands show
// a loading state visible only to the invoker.
func DeferredResponse(component bool) InteractionResponse {
	if component {
		return InteractionResponse{Type: CallbackDeferredUpdateMessage}
	}
	return InteractionResponse{Type: CallbackDeferredChannelMessage, Data: &DiscordMessage{
		AllowedMentions: discordAllowedMentions{Parse: []string{}},
		Flags:           FlagEphemeral,
	}}
}
