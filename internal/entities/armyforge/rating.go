package armyforge

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Rating is a string-encoded integer. Army Forge sends it as a JSON number,
// a string, an empty string or not at all.
type Rating string

// Int returns the leading integer of the rating, or 0 when there is none.
func (r Rating) Int() int {
	s := strings.TrimSpace(string(r))
	end := 0
	for end < len(s) {
		c := s[end]
		if (c == '-' || c == '+') && end == 0 {
			end++
			continue
		}
		if c < '0' || c > '9' {
			break
		}
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// IsSet reports whether the rating carries any text
func (r Rating) IsSet() bool {
	return strings.TrimSpace(string(r)) != ""
}

// UnmarshalJSON accepts numbers, strings and null
func (r *Rating) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*r = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = Rating(s)
		return nil
	}
	*r = Rating(data)
	return nil
}
