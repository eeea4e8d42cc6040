package models

import "math"

// InstanceID is the logical id of a record within its owning collection
type InstanceID uint64

// MCSTIndex is an index into an MCShower or MCTrack collection
type MCSTIndex uint16

// MCTIndex is an index into an MCTruth collection
type MCTIndex uint16

// Sentinels marking an unset index or unsigned field. Zero is a valid index,
// so every sentinel is the maximum value of its type.
const (
	InvalidInstanceID InstanceID = math.MaxUint64
	InvalidMCSTIndex  MCSTIndex  = math.MaxUint16
	InvalidMCTIndex   MCTIndex   = math.MaxUint16
	InvalidUint       uint32     = math.MaxUint32

	// InvalidIndex is the widest index sentinel
	InvalidIndex = math.MaxUint64
)

// IsValid reports whether the id is set
func (id InstanceID) IsValid() bool { return id != InvalidInstanceID }

// IsValid reports whether the index is set
func (i MCSTIndex) IsValid() bool { return i != InvalidMCSTIndex }

// IsValid reports whether the index is set
func (i MCTIndex) IsValid() bool { return i != InvalidMCTIndex }

// Aggregation represents aggregated statistics for a truth quantity
type Aggregation struct {
	Count  int64   `json:"count"`
	Sum    float64 `json:"sum"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	P99    float64 `json:"p99"`
}
