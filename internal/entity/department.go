package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type Department struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	DisplayName string     `json:"display_name"`
	ParentID    *uuid.UUID `json:"parent_id,omitempty"`
	Level       int        `json:"level"`
	CreatedAt   time.Time  `json:"created_at"`
}

type DepartmentNode struct {
	Department
	Children []*DepartmentNode `json:"children"`
}

func DepartmentsByID(departments []Department) map[uuid.UUID]Department {
	byID := make(map[uuid.UUID]Department, len(departments))
	for _, d := range departments {
		byID[d.ID] = d
	}

	return byID
}

// BuildDepartmentTree assembles a forest from flat parent-pointer
// records. Nodes without a parent, or whose parent is missing from the
// input, become roots. A cycle in the parent graph returns
// ErrDepartmentCycle instead of looping.
func BuildDepartmentTree(departments []Department) ([]*DepartmentNode, error) {
	nodes := make(map[uuid.UUID]*DepartmentNode, len(departments))
	for _, d := range departments {
		nodes[d.ID] = &DepartmentNode{Department: d}
	}

	var roots []*DepartmentNode

	childrenOf := make(map[uuid.UUID][]*DepartmentNode, len(departments))

	for _, d := range departments {
		node := nodes[d.ID]

		if d.ParentID == nil {
			roots = append(roots, node)
			continue
		}

		if _, ok := nodes[*d.ParentID]; !ok {
			roots = append(roots, node)
			continue
		}

		childrenOf[*d.ParentID] = append(childrenOf[*d.ParentID], node)
	}

	visited := make(map[uuid.UUID]struct{}, len(departments))

	stack := make([]*DepartmentNode, len(roots))
	copy(stack, roots)

	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visited[node.ID] = struct{}{}

		node.Children = childrenOf[node.ID]
		stack = append(stack, node.Children...)
	}

	// Anything not reachable from a root sits on a cycle.
	if len(visited) != len(departments) {
		return nil, ErrDepartmentCycle
	}

	return roots, nil
}

// AncestorChain walks parent pointers upward from startID, prepending
// each ancestor, until it reaches a department with no parent. The
// returned chain starts at the root and ends at startID.
func AncestorChain(byID map[uuid.UUID]Department, startID uuid.UUID) ([]Department, error) {
	start, ok := byID[startID]
	if !ok {
		return nil, ErrNotFound
	}

	chain := []Department{start}
	seen := map[uuid.UUID]struct{}{startID: {}}

	current := start

	for current.ParentID != nil {
		parent, ok := byID[*current.ParentID]
		if !ok {
			break
		}

		if _, dup := seen[parent.ID]; dup {
			return nil, ErrDepartmentCycle
		}

		seen[parent.ID] = struct{}{}
		chain = append([]Department{parent}, chain...)
		current = parent
	}

	return chain, nil
}
