// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing strings shared by the interaction
// handlers and the notification controls.
//
// All Msg* constants are written into Discord replies. Keeping them in one
// place ensures consistent wording across commands and buttons.
package app

const (
	// MsgSomethingWentWrong is the reply to any interaction whose handler
	// failed for a reason the user cannot fix.
	MsgSomethingWentWrong = "Something went wrong"

	MsgSubscribed        = "Subscribed successfully"
	MsgAlreadySubscribed = "You are already subscribed to this map"
	MsgUnsubscribed      = "Unsubscribed successfully"
	MsgNotSubscribed     = "You were not subscribed to this map"

	// MsgBeatmapsetNotQualified is returned when a user subscribes to a
	// beatmapset that is not in the qualified list.
	MsgBeatmapsetNotQualified = "This map is not qualified, only qualified maps can be subscribed to"

	// MsgNoBeatmapLink is returned when the link option holds no beatmapset
	// link. Example: https://osu.ppy.sh/beatmapsets/2018512
	MsgNoBeatmapLink = "Please provide a beatmapset link, for example `https://osu.ppy.sh/beatmapsets/2018512`"

	MsgMalformedBeatmapLink = "That beatmapset link doesn't look right"

	// MsgNoSubscriptions is returned by the subscriptions listing when the
	// user has none.
	MsgNoSubscriptions = "You are not subscribed to any beatmaps"

	MsgNotMessageOwner = "You are not the owner of this message!"

	// MsgMissingPermissions is returned when a moderation command is used
	// without the administrator permission.
	MsgMissingPermissions = "You need the Administrator permission to use this command"

	MsgUnknownCommand = "Unknown command"

	MsgBeatmapsetNotFound = "Couldn't find that beatmapset"

	MsgBeatmapsetPosted = "Posted! Press the bin to remove it"

	// MsgInvalidChannelKind lists the feeds a channel can subscribe to.
	MsgInvalidChannelKind = "Unknown feed, expected `mapfeed` or `groups`"

	// MsgChannelSubscribed and MsgChannelUnsubscribed are format strings
	// taking the channel id and the feed name.
	MsgChannelSubscribed        = "Subscribed <#%d> to %s successfully"
	MsgChannelAlreadySubscribed = "<#%d> is already subscribed to %s"
	MsgChannelUnsubscribed      = "Unsubscribed <#%d> from %s successfully"
	MsgChannelNotSubscribed     = "<#%d> was not subscribed to %s"
	MsgSubscriptionsTitle       = "Beatmaps you are subscribed to"
	MsgSubscriptionsFooter      = "Sorted closest to being ranked to furthest"
	MsgEmbedFooter              = "Made with ♥"
)
