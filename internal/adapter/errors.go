package adapter

import (
	"errors"
	"fmt"

	"github.com/Sigi3012/Midnight/models"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrRateLimited      = errors.New("rate limited")
	ErrServer           = errors.New("remote server error")
	ErrDecodingResponse = errors.New("error decoding response")
	ErrNoAccessToken    = errors.New("token exchange returned no access token")
)

// Schema drift of the scraped group pages.
var (
	// ErrGroupMarkupChanged means the json-users script block was not found.
	ErrGroupMarkupChanged = errors.New("group page markup changed")
	// ErrGroupPayloadMalformed means the block was found but does not hold
	// a list of members.
	ErrGroupPayloadMalformed = errors.New("group page payload malformed")
)

// StatusError is a non-2xx response. It unwraps to the sentinel matching the
// status code, if any.
type StatusError struct {
	Code int
	Body string
	Err  error
}

func (e *StatusError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("http %d: %s", e.Code, e.Body)
	}
	return fmt.Sprintf("%s (http %d): %s", e.Err, e.Code, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}

// ScrapeError reports a group page that could not be turned into members.
type ScrapeError struct {
	Group models.Group
	Err   error
}

func (e *ScrapeError) Error() string {
	return fmt.Sprintf("scraping group %q: %s", e.Group, e.Err)
}

func (e *ScrapeError) Unwrap() error {
	return e.Err
}
