// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// BeatmapStatus is the ranking state of a beatmapset as reported by osu!.
type BeatmapStatus int8

const (
	StatusPending BeatmapStatus = iota
	StatusRanked
	StatusQualified
	StatusLoved
	StatusWorkInProgress
	StatusGraveyard
)

// osu! encodes the ranking state as a small signed integer.
var statusByWireValue = map[int]BeatmapStatus{
	-2: StatusGraveyard,
	-1: StatusWorkInProgress,
	0:  StatusPending,
	1:  StatusRanked,
	2:  StatusRanked, // approved
	3:  StatusQualified,
	4:  StatusLoved,
}

// UnmarshalJSON decodes the integer status used by the osu! API.
// Unknown values are rejected so the caller can drop the record.
func (s *BeatmapStatus) UnmarshalJSON(b []byte) error {
	var raw int
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("beatmap status: %w", err)
	}

	status, ok := statusByWireValue[raw]
	if !ok {
		return fmt.Errorf("beatmap status: unknown value %d", raw)
	}

	*s = status
	return nil
}

// String returns the internal name of the state.
func (s BeatmapStatus) String() string {
	switch s {
	case StatusRanked:
		return "Ranked"
	case StatusQualified:
		return "Qualified"
	case StatusLoved:
		return "Loved"
	case StatusWorkInProgress:
		return "WorkInProgress"
	case StatusGraveyard:
		return "Graveyard"
	default:
		return "Pending"
	}
}

// DisplayName is the label shown in notifications. A beatmapset that drops
// out of the qualified list into any unranked state is shown as disqualified.
func (s BeatmapStatus) DisplayName() string {
	switch s {
	case StatusRanked, StatusQualified, StatusLoved:
		return s.String()
	default:
		return "Disqualified"
	}
}

// AllowsSubscription reports whether users may subscribe to a beatmapset
// in this state.
func (s BeatmapStatus) AllowsSubscription() bool {
	return s == StatusQualified
}

// Beatmap is a single difficulty of a beatmapset.
type Beatmap struct {
	ID               int32    `json:"id"`
	DifficultyRating float64  `json:"difficulty_rating"`
	Mode             Gamemode `json:"mode"`
	BPM              float64  `json:"bpm"`
}

// Nomination is one entry of the current_nominations list.
type Nomination struct {
	UserID int32 `json:"user_id"`
}

// Beatmapset is the tracked item of the mapfeed.
type Beatmapset struct {
	ID            int32         `json:"id"`
	Title         string        `json:"title"`
	Artist        string        `json:"artist"`
	Mapper        string        `json:"creator"`
	MapperID      int32         `json:"user_id"`
	Status        BeatmapStatus `json:"ranked"`
	Beatmaps      []Beatmap     `json:"beatmaps"`
	Nominations   []Nomination  `json:"current_nominations"`
	RankedDate    *time.Time    `json:"ranked_date"`
	SubmittedDate time.Time     `json:"submitted_date"`
}

// URL returns the public page of the beatmapset.
func (b Beatmapset) URL() string {
	return "https://osu.ppy.sh/beatmapsets/" + strconv.Itoa(int(b.ID))
}

// CoverURL returns the cover image of the beatmapset.
func (b Beatmapset) CoverURL() string {
	return "https://assets.ppy.sh/beatmaps/" + strconv.Itoa(int(b.ID)) + "/covers/cover.jpg"
}

// Gamemodes returns the distinct modes of the beatmapset's difficulties in
// first-seen order.
func (b Beatmapset) Gamemodes() []Gamemode {
	seen := make(map[Gamemode]struct{}, len(b.Beatmaps))
	modes := make([]Gamemode, 0, 1)
	for _, bm := range b.Beatmaps {
		if _, ok := seen[bm.Mode]; ok {
			continue
		}
		seen[bm.Mode] = struct{}{}
		modes = append(modes, bm.Mode)
	}

	return modes
}

// StarRange returns the lowest and highest difficulty rating.
func (b Beatmapset) StarRange() (lowest, highest float64) {
	for i, bm := range b.Beatmaps {
		if i == 0 || bm.DifficultyRating < lowest {
			lowest = bm.DifficultyRating
		}
		if bm.DifficultyRating > highest {
			highest = bm.DifficultyRating
		}
	}

	return lowest, highest
}

// SearchPage is a single page of the cursor-paginated beatmapset search.
type SearchPage struct {
	Beatmapsets []struct {
		ID int32 `json:"id"`
	} `json:"beatmapsets"`
	Cursor *string `json:"cursor_string"`
}
