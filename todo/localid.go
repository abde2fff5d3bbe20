package todo

import (
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"
)

// AssignLocalIDs sorts the batch by id and sets each todo's LocalID to the shortest prefix of its
// id that no other todo of the batch shares. Local ids are only valid for the batch they were
// computed on.
func AssignLocalIDs(todos []*Todo) {
	sort.SliceStable(todos, func(i, j int) bool {
		return todos[i].ID < todos[j].ID
	})
	for i, t := range todos {
		n := 1
		if len(t.ID) < n {
			n = len(t.ID)
		}
		// In sorted order, ids sharing a prefix are contiguous, so the neighbours suffice.
		for n < len(t.ID) && (sharesPrefix(todos, i-1, t.ID[:n]) || sharesPrefix(todos, i+1, t.ID[:n])) {
			n++
		}
		t.LocalID = t.ID[:n]
	}
	log.WithField("count", len(todos)).Debug("Computed local ids")
}

func sharesPrefix(todos []*Todo, i int, prefix string) bool {
	if i < 0 || i >= len(todos) {
		return false
	}
	return strings.HasPrefix(todos[i].ID, prefix)
}

// MatchLocalID returns the candidates whose full id starts with the given short id.
func MatchLocalID(candidates []*Todo, short string) []*Todo {
	var matches []*Todo
	for _, t := range candidates {
		if strings.HasPrefix(t.ID, short) {
			matches = append(matches, t)
		}
	}
	return matches
}
