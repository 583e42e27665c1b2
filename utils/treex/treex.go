// File: treex.go
// Title: Parent-Reference Tree Builder
// Description: Implements construction of hierarchies from flat collections
//              carrying parent references, and the inverse flattening of a
//              hierarchy into an ordered, depth-annotated list.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial implementation

package treex

import (
	"fmt"

	"github.com/msto63/bizcore/utils/mapx"
)

// Item is a flat record identified by a key. Items are accepted as an
// ordered slice so sibling order in the built tree follows input order.
type Item struct {
	Key    string
	Fields map[string]interface{}
}

// Node is a hierarchy node. Fields hold a copy of the source item's fields
// with the parent reference stripped; Children hold the subtree in input
// order.
type Node struct {
	Key      string
	Fields   map[string]interface{}
	Children []*Node
}

// ToTree builds a hierarchy from a flat item list. An item becomes a child
// of the item whose key matches its parentField value; items whose parent
// value equals rootParentID (nil by default convention) become roots.
//
// Items without the parent field are excluded everywhere. Items whose
// parent value matches neither rootParentID nor any item key are silently
// dropped. Input fields are copied, never aliased.
func ToTree(items []Item, parentField string, rootParentID interface{}) []*Node {
	return buildLevel(items, parentField, rootParentID, make(map[string]bool))
}

func buildLevel(items []Item, parentField string, parentID interface{}, onPath map[string]bool) []*Node {
	var nodes []*Node

	for _, item := range items {
		parent, hasParent := item.Fields[parentField]
		if !hasParent {
			continue
		}
		if !parentMatches(parent, parentID) {
			continue
		}
		// A key already on the ancestor path marks a reference cycle
		if onPath[item.Key] {
			continue
		}

		fields := mapx.Clone(item.Fields)
		delete(fields, parentField)

		onPath[item.Key] = true
		children := buildLevel(items, parentField, item.Key, onPath)
		delete(onPath, item.Key)

		nodes = append(nodes, &Node{
			Key:      item.Key,
			Fields:   fields,
			Children: children,
		})
	}

	return nodes
}

// parentMatches compares a parent reference with a candidate parent id.
// Keys are strings while parent references often arrive as numbers, so a
// string rendering comparison backs up strict equality.
func parentMatches(parent, parentID interface{}) bool {
	if parent == nil || parentID == nil {
		return parent == nil && parentID == nil
	}
	if parent == parentID {
		return true
	}
	return fmt.Sprintf("%v", parent) == fmt.Sprintf("%v", parentID)
}

// ListEntry is one row of a flattened hierarchy
type ListEntry struct {
	Key   string
	Name  string
	Level int
}

// TreeToList flattens a hierarchy depth-first in pre-order, annotating each
// row with its depth. Nodes missing nameField contribute no row, but their
// children are still visited at the deeper level.
func TreeToList(nodes []*Node, nameField string) []ListEntry {
	var list []ListEntry
	walk(nodes, nameField, 0, &list)
	return list
}

func walk(nodes []*Node, nameField string, level int, list *[]ListEntry) {
	for _, node := range nodes {
		if name, ok := node.Fields[nameField]; ok {
			*list = append(*list, ListEntry{
				Key:   node.Key,
				Name:  fmt.Sprintf("%v", name),
				Level: level,
			})
		}
		walk(node.Children, nameField, level+1, list)
	}
}
