package models

import "iter"

// NeutrinoSet is an ordered collection of Neutrino records. The position of a
// record in the set is its positional index; it is separate from the record's
// own ID, which callers usually keep equal to the position (see AssignIDs).
//
// The set preserves insertion order and never sorts, deduplicates or checks
// indices. It is not safe for concurrent mutation: a single writer must own it,
// or callers must synchronize externally. The zero value is an empty set.
type NeutrinoSet struct {
	records []Neutrino
}

// NewNeutrinoSet creates an empty set
func NewNeutrinoSet() *NeutrinoSet {
	return &NeutrinoSet{}
}

// Clear removes every record
func (s *NeutrinoSet) Clear() {
	s.records = nil
}

// Len returns the number of records
func (s *NeutrinoSet) Len() int {
	return len(s.records)
}

// At returns a copy of the record at position i. It panics if i is out of range.
func (s *NeutrinoSet) At(i int) Neutrino {
	return s.records[i].Clone()
}

// AsSlice returns the records in insertion order. The returned slice is a copy,
// so changing it does not change the set.
func (s *NeutrinoSet) AsSlice() []Neutrino {
	return cloneRecords(s.records)
}

// All iterates over positions and records in insertion order
func (s *NeutrinoSet) All() iter.Seq2[int, Neutrino] {
	return func(yield func(int, Neutrino) bool) {
		for i, rec := range s.records {
			if !yield(i, rec.Clone()) {
				return
			}
		}
	}
}

// Set replaces the contents with a copy of records. The caller's slice is not retained.
func (s *NeutrinoSet) Set(records []Neutrino) {
	s.records = cloneRecords(records)
}

// Append adds a copy of rec at the end
func (s *NeutrinoSet) Append(rec Neutrino) {
	s.records = append(s.records, rec.Clone())
}

// EmplaceBack moves rec to the end of the set. The set takes ownership of the
// record's data and rec is reset to NewNeutrino().
func (s *NeutrinoSet) EmplaceBack(rec *Neutrino) {
	s.records = append(s.records, *rec)
	*rec = NewNeutrino()
}

// Emplace replaces the contents with records, taking ownership of the slice
// without copying. The caller's slice is set to nil.
func (s *NeutrinoSet) Emplace(records *[]Neutrino) {
	s.records = *records
	*records = nil
}

// FindByID returns the position of the first record whose ID is id
func (s *NeutrinoSet) FindByID(id InstanceID) (int, bool) {
	for i := range s.records {
		if s.records[i].id == id {
			return i, true
		}
	}
	return -1, false
}

// AssignIDs sets every record's ID to its position
func (s *NeutrinoSet) AssignIDs() {
	for i := range s.records {
		s.records[i].id = InstanceID(i)
	}
}

func cloneRecords(records []Neutrino) []Neutrino {
	if records == nil {
		return nil
	}
	out := make([]Neutrino, len(records))
	for i := range records {
		out[i] = records[i].Clone()
	}
	return out
}
