package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/goalline/internal/client/models"
	"github.com/dmitrijs2005/goalline/internal/common"
)

// Filter keys accepted by several commands.
var (
	pageKeys  = []string{"page", "page_size"}
	scopeKeys = []string{"competition_id", "season_id", "team_id", "status", "date_from", "date_to", "round_to"}
)

// kv is the parsed form of key=value command arguments.
type kv map[string]string

// parseFilters splits args of the form key=value. Keys outside allowed, or
// arguments without '=', are rejected.
func parseFilters(args []string, allowed ...string) (kv, error) {
	out := kv{}
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, common.ValidationError(fmt.Sprintf("expected key=value, got %q", arg))
		}
		if !contains(allowed, k) {
			return nil, common.ValidationError(fmt.Sprintf("unknown filter %q (allowed: %s)", k, strings.Join(allowed, ", ")))
		}
		out[k] = v
	}
	return out, nil
}

// splitPositional separates leading arguments without '=' from the rest.
func splitPositional(args []string) (pos, rest []string) {
	for i, arg := range args {
		if strings.Contains(arg, "=") {
			return args[:i], args[i:]
		}
	}
	return args, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func keys(groups ...[]string) []string {
	var out []string
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func (f kv) intVal(key string) (int, error) {
	v, ok := f[key]
	if !ok || strings.TrimSpace(v) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n < 0 {
		return 0, common.ValidationError(fmt.Sprintf("%s must be a non-negative integer", key))
	}
	return n, nil
}

func (f kv) page() (models.PageRequest, error) {
	page, err := f.intVal("page")
	if err != nil {
		return models.PageRequest{}, err
	}
	size, err := f.intVal("page_size")
	if err != nil {
		return models.PageRequest{}, err
	}
	return models.PageRequest{Page: page, PageSize: size}, nil
}

func (f kv) scope() models.AnalyticsScope {
	return models.AnalyticsScope{
		CompetitionID: f["competition_id"],
		SeasonID:      f["season_id"],
		TeamID:        f["team_id"],
		Status:        f["status"],
		DateFrom:      f["date_from"],
		DateTo:        f["date_to"],
		RoundTo:       f["round_to"],
	}
}
