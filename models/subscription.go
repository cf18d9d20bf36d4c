package models

import "fmt"

// ChannelKind is the feed a Discord channel can subscribe to.
type ChannelKind string

const (
	ChannelKindMapfeed ChannelKind = "mapfeed"
	ChannelKindGroups  ChannelKind = "groups"
)

// ChannelKinds returns every feed a channel can subscribe to.
func ChannelKinds() []ChannelKind {
	return []ChannelKind{ChannelKindMapfeed, ChannelKindGroups}
}

// ParseChannelKind validates a feed name coming from user input.
func ParseChannelKind(s string) (ChannelKind, error) {
	for _, kind := range ChannelKinds() {
		if string(kind) == s {
			return kind, nil
		}
	}

	return "", fmt.Errorf("unknown channel kind %q", s)
}

// SubscriptionStatus is the outcome of an idempotent subscription change.
type SubscriptionStatus int

const (
	SubscriptionAdded SubscriptionStatus = iota
	SubscriptionAlreadyExists
	SubscriptionRemoved
	SubscriptionDidNotExist
)

func (s SubscriptionStatus) String() string {
	switch s {
	case SubscriptionAdded:
		return "added"
	case SubscriptionAlreadyExists:
		return "already exists"
	case SubscriptionRemoved:
		return "removed"
	case SubscriptionDidNotExist:
		return "did not exist"
	default:
		return "unknown"
	}
}
