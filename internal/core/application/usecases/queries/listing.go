package queries

import (
	"strings"

	"github.com/lib/pq"
)

const (
	summaryLength = 40
	noValue       = "-"
)

// summarize cuts text to its first 40 characters and appends "..." when it was longer.
func summarize(text string) string {
	runes := []rune(text)
	if len(runes) <= summaryLength {
		return text
	}
	return string(runes[:summaryLength]) + "..."
}

// likePattern builds a case-insensitive substring pattern with LIKE wildcards escaped.
func likePattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.TrimSpace(search))
	return "%" + escaped + "%"
}

// orderBy maps a sort key such as "name" or "-price" to an ORDER BY expression. Only keys
// listed in columns are accepted; anything else falls back to fallback.
func orderBy(sort string, columns map[string]string, fallback string) string {
	sort = strings.TrimSpace(sort)
	direction := "ASC"
	if strings.HasPrefix(sort, "-") {
		direction = "DESC"
		sort = sort[1:]
	}

	column, ok := columns[sort]
	if !ok {
		column, direction = columns[fallback], "ASC"
	}
	return pq.QuoteIdentifier(column) + " " + direction + ", " + pq.QuoteIdentifier("id") + " ASC"
}
