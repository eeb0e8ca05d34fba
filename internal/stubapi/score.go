package stubapi

import (
	"regexp"
	"strconv"

	"github.com/tidwall/gjson"
)

var scorePattern = regexp.MustCompile(`^\s*(\d+)\D+(\d+)\s*$`)

// parseScore reads a full-time score from any stored shape: "2-1",
// {"ft":[2,1]} or {"ft":{"home":2,"away":1}}. ok is false for unplayed or
// unreadable scores.
func parseScore(raw []byte) (home, away int, ok bool) {
	if len(raw) == 0 || !gjson.ValidBytes(raw) {
		return 0, 0, false
	}

	r := gjson.ParseBytes(raw)
	switch {
	case r.Type == gjson.String:
		m := scorePattern.FindStringSubmatch(r.Str)
		if m == nil {
			return 0, 0, false
		}
		h, _ := strconv.Atoi(m[1])
		a, _ := strconv.Atoi(m[2])
		return h, a, true

	case r.IsObject():
		ft := r.Get("ft")
		if ft.IsArray() {
			parts := ft.Array()
			if len(parts) != 2 || parts[0].Type != gjson.Number || parts[1].Type != gjson.Number {
				return 0, 0, false
			}
			return int(parts[0].Int()), int(parts[1].Int()), true
		}
		h, a := ft.Get("home"), ft.Get("away")
		if h.Type != gjson.Number || a.Type != gjson.Number {
			return 0, 0, false
		}
		return int(h.Int()), int(a.Int()), true
	}
	return 0, 0, false
}
