package notify

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Sigi3012/Midnight/internal/app"
	"github.com/Sigi3012/Midnight/models"
)

// Embed colours.
const (
	ColorRanked       = 0x405AC9
	ColorQualified    = 0xD1A03D
	ColorDisqualified = 0xD22B2B
	ColorLoved        = 0xFF69B4

	ColorGroupAdded   = 0x80FF80
	ColorGroupRemoved = 0xFF3737
	ColorGroupUpdated = 0xFFFF80

	ColorSubscriptions = 0x6758B8
)

// Discord rejects messages with more embeds than this.
const maxEmbedsPerMessage = 10

// Control actions encoded in button custom ids as "{id}.{action}".
const (
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
	ActionDelete      = "delete"
)

// StatusColor returns the embed colour of a beatmapset state.
func StatusColor(status models.BeatmapStatus) int {
	switch status {
	case models.StatusRanked:
		return ColorRanked
	case models.StatusQualified:
		return ColorQualified
	case models.StatusLoved:
		return ColorLoved
	default:
		return ColorDisqualified
	}
}

// ControlID builds the custom id of a button acting on id.
func ControlID(id int64, action string) string {
	return strconv.FormatInt(id, 10) + "." + action
}

// ParseControlID splits a custom id built by ControlID.
func ParseControlID(customID string) (int64, string, error) {
	raw, action, ok := strings.Cut(customID, ".")
	if !ok || action == "" {
		return 0, "", fmt.Errorf("%w: %q", ErrUnknownControl, customID)
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, "", fmt.Errorf("%w: %q", ErrUnknownControl, customID)
	}

	return id, action, nil
}

// RenderBeatmapset renders the mapfeed card of set. Subscribers are pinged
// in the content. Qualified beatmapsets carry subscribe and unsubscribe
// buttons.
func RenderBeatmapset(set models.Beatmapset, subscribers []int64) models.Message {
	msg := models.Message{
		Embeds:   []models.Embed{beatmapsetEmbed(set)},
		Mentions: subscribers,
	}

	if len(subscribers) > 0 {
		pings := make([]string, 0, len(subscribers))
		for _, id := range subscribers {
			pings = append(pings, "<@"+strconv.FormatInt(id, 10)+">")
		}
		msg.Content = strings.Join(pings, ", ")
	}

	if set.Status.AllowsSubscription() {
		msg.Buttons = []models.Button{
			{Label: "Subscribe", CustomID: ControlID(int64(set.ID), ActionSubscribe), Style: models.ButtonPrimary},
			{Label: "Unsubscribe", CustomID: ControlID(int64(set.ID), ActionUnsubscribe), Style: models.ButtonDanger},
		}
	}

	return msg
}

// RenderDeletedBeatmapset tells the subscribers of a beatmapset that was
// removed from osu! altogether. Only the id is known at that point.
func RenderDeletedBeatmapset(id int32, subscribers []int64) models.Message {
	set := models.Beatmapset{ID: id}

	msg := RenderBeatmapset(set, subscribers)
	msg.Embeds = []models.Embed{{
		Description: fmt.Sprintf("**[Beatmapset %d](%s)** | **Deleted**\nThis beatmapset is no longer available on osu!", id, set.URL()),
		Color:       ColorDisqualified,
	}}

	return msg
}

// RenderShowcase renders the card posted by the show command. Only ownerID
// may delete it.
func RenderShowcase(set models.Beatmapset, ownerID int64) models.Message {
	return models.Message{
		Embeds: []models.Embed{beatmapsetEmbed(set)},
		Buttons: []models.Button{
			{CustomID: ControlID(ownerID, ActionDelete), Style: models.ButtonDanger, Emoji: "\U0001F5D1"},
		},
	}
}

func beatmapsetEmbed(set models.Beatmapset) models.Embed {
	var b strings.Builder

	fmt.Fprintf(&b, "**[%s](%s)** | **%s", set.Title, set.URL(), set.Status.DisplayName())
	if set.RankedDate != nil {
		fmt.Fprintf(&b, " <t:%d:R>", set.RankedDate.Unix())
	}
	b.WriteString("**\n")

	fmt.Fprintf(&b, "Mapped by [%s](https://osu.ppy.sh/users/%d) | [%s]\n",
		set.Mapper, set.MapperID, dominantGamemode(set).DisplayName())
	fmt.Fprintf(&b, "Artist: %s\n", set.Artist)
	if !set.SubmittedDate.IsZero() {
		fmt.Fprintf(&b, "Submitted: <t:%d:R>\n", set.SubmittedDate.Unix())
	}
	b.WriteString("\n")
	b.WriteString(starRating(set))

	return models.Embed{
		Description: b.String(),
		Color:       StatusColor(set.Status),
		Image:       "https://assets.ppy.sh/beatmaps/" + strconv.Itoa(int(set.ID)) + "/covers/card.jpg",
	}
}

// dominantGamemode returns the mode most difficulties are in, osu! when the
// set has none. Ties go to the mode seen first.
func dominantGamemode(set models.Beatmapset) models.Gamemode {
	counts := make(map[models.Gamemode]int, 4)
	for _, bm := range set.Beatmaps {
		counts[bm.Mode]++
	}

	best := models.GamemodeOsu
	bestCount := 0
	for _, mode := range set.Gamemodes() {
		if counts[mode] > bestCount {
			best, bestCount = mode, counts[mode]
		}
	}

	return best
}

func starRating(set models.Beatmapset) string {
	lowest, highest := set.StarRange()
	switch len(set.Beatmaps) {
	case 0:
		return "No difficulties"
	case 1:
		return fmt.Sprintf("%.2f ★ • 1 Difficulty", highest)
	default:
		return fmt.Sprintf("%.2f - %.2f ★ • %d Difficulties", lowest, highest, len(set.Beatmaps))
	}
}

// RenderGroupDiff renders one embed per added, removed and updated member,
// packed into as few messages as Discord allows.
func RenderGroupDiff(diff models.GroupDiff, now time.Time) []models.Message {
	group := diff.Group.DisplayName()
	embeds := make([]models.Embed, 0, len(diff.Added)+len(diff.Removed)+len(diff.Updated))

	for _, member := range diff.Added {
		modes, _ := member.GamemodesIn(diff.Group)
		embeds = append(embeds, memberEmbed(member, "Added to `"+group+"`", gamemodeBlock(modes, nil), ColorGroupAdded, now))
	}
	for _, member := range diff.Removed {
		embeds = append(embeds, memberEmbed(member, "Removed from `"+group+"`", "", ColorGroupRemoved, now))
	}
	for _, update := range diff.Updated {
		embeds = append(embeds, memberEmbed(update.Member, "Updated gamemodes in `"+group+"`",
			gamemodeBlock(update.Change.Added, update.Change.Removed), ColorGroupUpdated, now))
	}

	var messages []models.Message
	for start := 0; start < len(embeds); start += maxEmbedsPerMessage {
		end := min(start+maxEmbedsPerMessage, len(embeds))
		messages = append(messages, models.Message{Embeds: embeds[start:end]})
	}

	return messages
}

func memberEmbed(member models.GroupMember, title, description string, color int, now time.Time) models.Embed {
	ts := now.UTC()
	return models.Embed{
		Title:       title,
		Description: description,
		Color:       color,
		Author: &models.EmbedAuthor{
			Name:    member.Username,
			URL:     member.ProfileURL(),
			IconURL: member.AvatarURL,
		},
		Footer:    app.MsgEmbedFooter,
		Timestamp: &ts,
	}
}

// gamemodeBlock renders a diff code block, or nothing when both lists are
// empty.
func gamemodeBlock(added, removed []models.Gamemode) string {
	if len(added) == 0 && len(removed) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("```diff\n")
	for _, mode := range added {
		b.WriteString("+ " + mode.DisplayName() + "\n")
	}
	for _, mode := range removed {
		b.WriteString("- " + mode.DisplayName() + "\n")
	}
	b.WriteString("```")

	return b.String()
}

// RenderSubscriptions renders the beatmapsets a user is subscribed to in the
// given order.
func RenderSubscriptions(sets []models.Beatmapset) models.Message {
	lines := make([]string, 0, len(sets))
	for _, set := range sets {
		lines = append(lines, "- ["+set.Title+"]("+set.URL()+")")
	}

	return models.Message{
		Embeds: []models.Embed{{
			Title:       app.MsgSubscriptionsTitle,
			Description: strings.Join(lines, "\n"),
			Color:       ColorSubscriptions,
			Footer:      app.MsgSubscriptionsFooter,
		}},
	}
}
