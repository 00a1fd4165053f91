package ai

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"gorm.io/datatypes"
)

var errEmptyReply = errors.New("empty model reply")

// StripCodeFence removes a leading ```json or ``` marker and a trailing ```
// marker that models like to wrap JSON in.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseReply accepts any syntactically valid JSON value and returns it compacted.
func parseReply(reply string) (datatypes.JSON, error) {
	body := StripCodeFence(reply)
	if body == "" {
		return nil, errEmptyReply
	}
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(body)); err != nil {
		return nil, err
	}
	return datatypes.JSON(buf.Bytes()), nil
}
