package adapter

import (
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

const maxErrorBody = 512

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	statusErr := &StatusError{Code: resp.StatusCode(), Body: body}

	switch code := resp.StatusCode(); {
	case code == http.StatusBadRequest:
		statusErr.Err = ErrBadRequest
	case code == http.StatusUnauthorized:
		statusErr.Err = ErrUnauthorized
	case code == http.StatusForbidden:
		statusErr.Err = ErrForbidden
	case code == http.StatusNotFound:
		statusErr.Err = ErrNotFound
	case code == http.StatusTooManyRequests:
		statusErr.Err = ErrRateLimited
	case code >= http.StatusInternalServerError:
		statusErr.Err = ErrServer
	}

	return statusErr
}
