// Package search finds outline items by fuzzy text with optional tag and
// attribute filters.
package search

import (
	"slices"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/tui-treelist/internal/model"
)

// Query is a parsed find query. Words starting with # filter on tags,
// key:value words filter on attributes, the rest is fuzzy matched against
// the item text.
type Query struct {
	Text  string
	Tags  []string
	Attrs map[string]string
}

// Match is one found item
type Match struct {
	Item     *model.Item
	Distance int
}

// ParseQuery splits a query string into its parts
func ParseQuery(q string) Query {
	var query Query
	var words []string
	for _, field := range strings.Fields(q) {
		switch {
		case strings.HasPrefix(field, "#") && len(field) > 1:
			query.Tags = append(query.Tags, strings.ToLower(field[1:]))
		case strings.Count(field, ":") == 1 && !strings.HasPrefix(field, ":") && !strings.HasSuffix(field, ":"):
			key, value, _ := strings.Cut(field, ":")
			if query.Attrs == nil {
				query.Attrs = make(map[string]string)
			}
			query.Attrs[key] = value
		default:
			words = append(words, field)
		}
	}
	query.Text = strings.Join(words, " ")
	return query
}

// Empty reports whether the query matches everything
func (q Query) Empty() bool {
	return q.Text == "" && len(q.Tags) == 0 && len(q.Attrs) == 0
}

func (q Query) filter(item *model.Item) bool {
	for _, tag := range q.Tags {
		if !slices.ContainsFunc(item.Tags(), func(t string) bool { return strings.EqualFold(t, tag) }) {
			return false
		}
	}
	for k, v := range q.Attrs {
		if !strings.EqualFold(item.Attribute(k), v) {
			return false
		}
	}
	return true
}

// Find returns the items matching q, best match first. Items with the
// same distance keep their outline order.
func Find(items []*model.Item, q string) []Match {
	query := ParseQuery(q)
	if query.Empty() {
		return nil
	}

	var candidates []*model.Item
	for _, it := range items {
		if query.filter(it) {
			candidates = append(candidates, it)
		}
	}
	if query.Text == "" {
		matches := make([]Match, len(candidates))
		for i, it := range candidates {
			matches[i] = Match{Item: it}
		}
		return matches
	}

	texts := make([]string, len(candidates))
	for i, it := range candidates {
		texts[i] = it.Text
	}
	ranks := fuzzy.RankFindFold(query.Text, texts)
	sort.SliceStable(ranks, func(i, j int) bool {
		if ranks[i].Distance != ranks[j].Distance {
			return ranks[i].Distance < ranks[j].Distance
		}
		return ranks[i].OriginalIndex < ranks[j].OriginalIndex
	})

	matches := make([]Match, len(ranks))
	for i, r := range ranks {
		matches[i] = Match{Item: candidates[r.OriginalIndex], Distance: r.Distance}
	}
	return matches
}
