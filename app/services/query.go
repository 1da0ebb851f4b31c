package services

import (
	"sort"
	"strings"
	"time"

	"github.com/trs-1342/rss-hattab/app/models"
)

// dateLayouts are the formats accepted for the from/to query parameters.
var dateLayouts = []string{time.RFC3339, "2006-01-02"}

// parseBound parses a date parameter, reporting whether it was understood.
func parseBound(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FilterPosts orders posts newest-first by publication date and keeps those
// matching all given predicates: q as a case-insensitive substring of
// title+description+body, and from/to as inclusive publishedAt bounds.
// The sort is stable, so equally-dated posts keep their stored order.
//
// An empty from/to leaves that bound unapplied. A non-empty value that does
// not parse guards an invalid instant: its comparison fails for every post,
// so the result is empty.
func FilterPosts(posts []models.Post, q, from, to string) []models.Post {
	sorted := make([]models.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})

	needle := strings.ToLower(strings.TrimSpace(q))
	fromT, fromOK := time.Time{}, true
	if from != "" {
		fromT, fromOK = parseBound(from)
	}
	toT, toOK := time.Time{}, true
	if to != "" {
		toT, toOK = parseBound(to)
	}

	items := make([]models.Post, 0, len(sorted))
	for _, p := range sorted {
		if needle != "" {
			hay := strings.ToLower(p.Title + " " + p.Description + " " + p.Body)
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		if from != "" && (!fromOK || p.PublishedAt.Before(fromT)) {
			continue
		}
		if to != "" && (!toOK || p.PublishedAt.After(toT)) {
			continue
		}
		items = append(items, p)
	}
	return items
}
