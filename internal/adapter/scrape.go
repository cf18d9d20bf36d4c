package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/Sigi3012/Midnight/models"
)

const (
	usersScriptOpen  = `<script id="json-users" type="application/json">`
	usersScriptClose = `</script>`
)

// extractGroupMembers pulls the member list embedded in a group page.
func extractGroupMembers(page []byte) ([]models.GroupMember, error) {
	_, rest, found := bytes.Cut(page, []byte(usersScriptOpen))
	if !found {
		return nil, fmt.Errorf("%w: opening json-users tag not found", ErrGroupMarkupChanged)
	}
	payload, _, found := bytes.Cut(rest, []byte(usersScriptClose))
	if !found {
		return nil, fmt.Errorf("%w: closing script tag not found", ErrGroupMarkupChanged)
	}
	payload = bytes.TrimSpace(payload)

	if !gjson.ValidBytes(payload) {
		return nil, fmt.Errorf("%w: invalid json", ErrGroupPayloadMalformed)
	}
	users := gjson.ParseBytes(payload)
	if !users.IsArray() {
		return nil, fmt.Errorf("%w: expected a list, got %s", ErrGroupPayloadMalformed, users.Type)
	}

	for i, user := range users.Array() {
		if user.Get("id").Type != gjson.Number || user.Get("username").Type != gjson.String {
			return nil, fmt.Errorf("%w: entry %d has no id or username", ErrGroupPayloadMalformed, i)
		}
	}

	members := make([]models.GroupMember, 0)
	if err := json.Unmarshal(payload, &members); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGroupPayloadMalformed, err)
	}

	return members, nil
}
