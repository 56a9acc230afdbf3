package validation

import (
	"net/url"
	"strconv"
	"strings"

	"taskboard/internal/core/domain"
)

// BuildListTasksInput reads page, limit, status and search. Values that do not parse as
// integers are treated as absent so the task service applies its defaults.
func BuildListTasksInput(values url.Values) domain.ListTasksInput {
	return domain.ListTasksInput{
		Page:   optionalInt(values, "page"),
		Limit:  optionalInt(values, "limit"),
		Status: optionalString(values, "status"),
		Search: optionalString(values, "search"),
	}
}

func optionalInt(values url.Values, key string) *int {
	raw, ok := lookup(values, key)
	if !ok {
		return nil
	}

	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil
	}
	return &value
}

func optionalString(values url.Values, key string) *string {
	raw, ok := lookup(values, key)
	if !ok || raw == "" {
		return nil
	}
	return &raw
}

func lookup(values url.Values, key string) (string, bool) {
	if _, ok := values[key]; !ok {
		return "", false
	}
	return values.Get(key), true
}
