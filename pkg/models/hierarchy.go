package models

import (
	"errors"
	"fmt"
)

var (
	// ErrDanglingChild is returned when a child id matches no record in the set
	ErrDanglingChild = errors.New("child id not found in set")
	// ErrSelfChild is returned when a record lists its own id as a child
	ErrSelfChild = errors.New("record lists itself as a child")
	// ErrHierarchyCycle is returned when following child ids leads back to a record
	ErrHierarchyCycle = errors.New("child hierarchy contains a cycle")
	// ErrDuplicateID is returned when two records share an id
	ErrDuplicateID = errors.New("duplicate record id")
)

// CheckHierarchy verifies the child id references of every record in set:
// record ids must be unique, each child id must be the ID of a record in the
// same set, and the child graph must be acyclic. The set never calls this itself.
func CheckHierarchy(set *NeutrinoSet) error {
	positions := make(map[InstanceID]int, set.Len())
	for i := range set.records {
		id := set.records[i].id
		if first, seen := positions[id]; seen {
			return fmt.Errorf("records %d and %d (id %d): %w", first, i, id, ErrDuplicateID)
		}
		positions[id] = i
	}

	for i := range set.records {
		rec := &set.records[i]
		for _, child := range rec.childrenIDs {
			if child == rec.id {
				return fmt.Errorf("record %d (id %d): %w", i, rec.id, ErrSelfChild)
			}
			if _, ok := positions[child]; !ok {
				return fmt.Errorf("record %d (id %d) child %d: %w", i, rec.id, child, ErrDanglingChild)
			}
		}
	}

	const (
		unvisited = iota
		inProgress
		done
	)
	state := make([]int, set.Len())

	var visit func(pos int) error
	visit = func(pos int) error {
		switch state[pos] {
		case inProgress:
			return fmt.Errorf("at id %d: %w", set.records[pos].id, ErrHierarchyCycle)
		case done:
			return nil
		}
		state[pos] = inProgress
		for _, child := range set.records[pos].childrenIDs {
			if err := visit(positions[child]); err != nil {
				return err
			}
		}
		state[pos] = done
		return nil
	}

	for i := range set.records {
		if err := visit(i); err != nil {
			return err
		}
	}
	return nil
}
