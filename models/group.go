package models

// Gamemode is one of the four osu! rulesets.
type Gamemode string

const (
	GamemodeOsu    Gamemode = "osu"
	GamemodeTaiko  Gamemode = "taiko"
	GamemodeFruits Gamemode = "fruits"
	GamemodeMania  Gamemode = "mania"
)

// DisplayName returns the ruleset name shown to users.
func (g Gamemode) DisplayName() string {
	switch g {
	case GamemodeOsu:
		return "osu!Standard"
	case GamemodeTaiko:
		return "osu!Taiko"
	case GamemodeFruits:
		return "osu!Catch"
	case GamemodeMania:
		return "osu!Mania"
	default:
		return string(g)
	}
}

// Group is the identifier of an osu! user group as used on the group pages.
type Group string

const (
	GroupBeatmapNominator             Group = "bng"
	GroupProbationaryBeatmapNominator Group = "bng_limited"
	GroupNominationAssessmentTeam     Group = "nat"
	GroupGlobalModerationTeam         Group = "gmt"
	GroupDeveloper                    Group = "dev"
	GroupFeatureArtist                Group = "featured_artist"
	GroupBeatmapSpotlightCurator      Group = "bsc"
	GroupProjectLoved                 Group = "loved"
	GroupTechnicalSupportTeam         Group = "tc"
	GroupSupporter                    Group = "support"
	GroupPpy                          Group = "ppy"
	GroupBot                          Group = "bot"
	GroupAlumni                       Group = "alumni"
)

var groupIDs = map[Group]int{
	GroupBeatmapNominator:             28,
	GroupProbationaryBeatmapNominator: 32,
	GroupNominationAssessmentTeam:     7,
	GroupGlobalModerationTeam:         4,
	GroupDeveloper:                    11,
	GroupFeatureArtist:                35,
	GroupBeatmapSpotlightCurator:      48,
	GroupProjectLoved:                 31,
	GroupTechnicalSupportTeam:         50,
	GroupSupporter:                    22,
	GroupPpy:                          33,
	GroupBot:                          29,
	GroupAlumni:                       16,
}

var groupNames = map[Group]string{
	GroupBeatmapNominator:             "Beatmap Nominators",
	GroupProbationaryBeatmapNominator: "Beatmap Nominators (Probationary)",
	GroupNominationAssessmentTeam:     "Nomination Assessment Team",
	GroupGlobalModerationTeam:         "Global Moderation Team",
	GroupDeveloper:                    "Developers",
	GroupFeatureArtist:                "Featured Artists",
	GroupBeatmapSpotlightCurator:      "Beatmap Spotlight Curators",
	GroupProjectLoved:                 "Project Loved",
	GroupTechnicalSupportTeam:         "Technical Support Team",
	GroupSupporter:                    "osu!supporter",
	GroupPpy:                          "ppy",
	GroupBot:                          "Chat Bots",
	GroupAlumni:                       "osu! Alumni",
}

// TrackedGroups returns the groups watched by the group feed, in the order
// they are reconciled.
func TrackedGroups() []Group {
	return []Group{
		GroupBeatmapNominator,
		GroupProbationaryBeatmapNominator,
		GroupNominationAssessmentTeam,
		GroupGlobalModerationTeam,
		GroupDeveloper,
		GroupFeatureArtist,
		GroupBeatmapSpotlightCurator,
		GroupProjectLoved,
	}
}

// ID returns the numeric group id used in the group page URL, or 0 for an
// unknown identifier.
func (g Group) ID() int {
	return groupIDs[g]
}

// DisplayName returns the English title of the group.
func (g Group) DisplayName() string {
	if name, ok := groupNames[g]; ok {
		return name
	}

	return string(g)
}

// MemberOf is one group membership of a user with the rulesets the user
// covers in that group. Gamemodes is empty for groups without rulesets.
type MemberOf struct {
	Group     Group      `json:"identifier"`
	Gamemodes []Gamemode `json:"playmodes"`
}

// GroupMember is a user listed on a group page.
type GroupMember struct {
	ID        int32      `json:"id"`
	Username  string     `json:"username"`
	AvatarURL string     `json:"avatar_url"`
	Groups    []MemberOf `json:"groups"`
}

// GamemodesIn returns the rulesets of the member in group and whether the
// member belongs to it at all.
func (m GroupMember) GamemodesIn(group Group) ([]Gamemode, bool) {
	for _, g := range m.Groups {
		if g.Group == group {
			return g.Gamemodes, true
		}
	}

	return nil, false
}

// IsMemberOf reports whether the member belongs to group.
func (m GroupMember) IsMemberOf(group Group) bool {
	_, ok := m.GamemodesIn(group)
	return ok
}

// ProfileURL returns the osu! profile page of the member.
func (m GroupMember) ProfileURL() string {
	return "https://osu.ppy.sh/users/" + itoa32(m.ID)
}
