package adapter

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/Sigi3012/Midnight/models"
)

const optionTypeSubcommandGroup = 2

type discordUser struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
}

type discordInteraction struct {
	ID        int64                  `json:"id,string"`
	Type      models.InteractionType `json:"type"`
	Token     string                 `json:"token"`
	ChannelID string                 `json:"channel_id"`
	Member    *struct {
		User        discordUser `json:"user"`
		Permissions string      `json:"permissions"`
	} `json:"member"`
	User    *discordUser `json:"user"`
	Message *struct {
		ID int64 `json:"id,string"`
	} `json:"message"`
	Data *struct {
		Name     string                 `json:"name"`
		CustomID string                 `json:"custom_id"`
		Options  []discordCommandOption `json:"options"`
	} `json:"data"`
}

type discordCommandOption struct {
	Name    string                   `json:"name"`
	Type    models.CommandOptionType `json:"type"`
	Value   json.RawMessage          `json:"value"`
	Options []discordCommandOption   `json:"options"`
}

// DecodeInteraction parses the body of an interaction request. The
// Responder of the result is left unset.
func DecodeInteraction(body []byte) (models.Interaction, error) {
	var raw discordInteraction
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.Interaction{}, errors.Join(ErrDecodingResponse, err)
	}

	in := models.Interaction{
		ID:    raw.ID,
		Token: raw.Token,
		Type:  raw.Type,
	}
	if raw.ChannelID != "" {
		id, err := strconv.ParseInt(raw.ChannelID, 10, 64)
		if err != nil {
			return models.Interaction{}, fmt.Errorf("%w: channel id %q", ErrDecodingResponse, raw.ChannelID)
		}
		in.ChannelID = id
	}

	switch {
	case raw.Member != nil:
		in.UserID = raw.Member.User.ID
		in.Username = raw.Member.User.Username
		if raw.Member.Permissions != "" {
			perms, err := strconv.ParseUint(raw.Member.Permissions, 10, 64)
			if err != nil {
				return models.Interaction{}, fmt.Errorf("%w: permissions %q", ErrDecodingResponse, raw.Member.Permissions)
			}
			in.Permissions = perms
		}
	case raw.User != nil:
		in.UserID = raw.User.ID
		in.Username = raw.User.Username
	}

	if raw.Message != nil {
		in.MessageID = raw.Message.ID
	}

	if raw.Data != nil {
		in.CustomID = raw.Data.CustomID
		if raw.Type == models.InteractionApplicationCmd {
			in.Command = decodeCommand(raw.Data.Name, raw.Data.Options)
		}
	}

	return in, nil
}

// decodeCommand walks down subcommand groups and subcommands and collects
// the leaf option values.
func decodeCommand(name string, options []discordCommandOption) models.Command {
	cmd := models.Command{Name: name, Options: make(map[string]string)}

	for len(options) == 1 &&
		(options[0].Type == models.OptionSubcommand || options[0].Type == optionTypeSubcommandGroup) {
		if cmd.Subcommand == "" {
			cmd.Subcommand = options[0].Name
		} else {
			cmd.Subcommand += " " + options[0].Name
		}
		options = options[0].Options
	}

	for _, opt := range options {
		cmd.Options[opt.Name] = optionValue(opt.Value)
	}

	return cmd
}

func optionValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
