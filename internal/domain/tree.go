package domain

import (
	"sort"
	"time"
)

// SessionNode is one node of the session lineage forest
type SessionNode struct {
	Children []*SessionNode
	Entry    IndexEntry
}

// BuildTree reconstructs the lineage forest from flat index entries. A node's
// parent is the id up to its last separator when that id is registered;
// otherwise the node is a root. Siblings are ordered by last update, newest
// first.
func BuildTree(entries []IndexEntry) []*SessionNode {
	nodes := make(map[string]*SessionNode, len(entries))
	for _, e := range entries {
		nodes[e.SessionID] = &SessionNode{Entry: e}
	}

	var roots []*SessionNode
	for _, e := range entries {
		node := nodes[e.SessionID]
		if parent, ok := nodes[ParentID(e.SessionID)]; ok {
			parent.Children = append(parent.Children, node)
			continue
		}
		roots = append(roots, node)
	}

	sortNodes(roots)
	return roots
}

func sortNodes(nodes []*SessionNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return newerFirst(nodes[i].Entry, nodes[j].Entry)
	})
	for _, n := range nodes {
		sortNodes(n.Children)
	}
}

func newerFirst(a, b IndexEntry) bool {
	if !a.LastUpdated.Equal(b.LastUpdated) {
		return a.LastUpdated.After(b.LastUpdated)
	}
	return a.SessionID < b.SessionID
}

// SortEntriesByLastUpdated orders index entries newest first
func SortEntriesByLastUpdated(entries []IndexEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return newerFirst(entries[i], entries[j])
	})
}

// Fork builds the child session of s that starts before turn atIndex.
// The child copies turns [0, atIndex) and the session configuration; its pool
// is empty.
func (s *Session) Fork(childID string, atIndex int, now time.Time) (*Session, error) {
	if atIndex < 0 || atIndex >= len(s.Turns) {
		return nil, ErrTurnIndexOutOfRange
	}
	src := s.Clone()
	return &Session{
		Artifacts:                 src.Artifacts,
		Background:                src.Background,
		CreatedAt:                 now,
		Hyperparameters:           src.Hyperparameters,
		ID:                        childID,
		MultiStepReasoningEnabled: src.MultiStepReasoningEnabled,
		Procedure:                 src.Procedure,
		Purpose:                   "Fork of: " + src.Purpose,
		References:                src.References,
		Roles:                     src.Roles,
		Todos:                     src.Todos,
		Turns:                     src.Turns[:atIndex:atIndex],
	}, nil
}
