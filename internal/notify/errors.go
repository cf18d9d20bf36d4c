package notify

import "errors"

var (
	ErrUnknownControl      = errors.New("unknown control")
	ErrChannelsUnavailable = errors.New("subscribed channels unavailable")

	// ErrStopListening is returned by a Handler to end its listener without
	// stripping the controls, for example after the message was deleted.
	ErrStopListening = errors.New("stop listening")
)
