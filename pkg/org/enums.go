package org

// Status is the employment state of a person. It drives the fill color of the
// rendered node. The set is closed; values outside it map to StatusUnknown,
// which renders with the baseline style rather than failing.
type Status int

const (
	// StatusUnknown is the fallback for absent or unrecognized status values.
	StatusUnknown Status = iota
	// StatusPermanent is a permanent employee.
	StatusPermanent
	// StatusContractor is an external contractor.
	StatusContractor
	// StatusLeaving is an employee working their notice period.
	StatusLeaving
	// StatusStarting is a hire with a signed offer who has not joined yet.
	StatusStarting
	// StatusHiring is an open position not yet filled.
	StatusHiring
	// StatusMoving is an employee transferring to another team.
	StatusMoving
)

// statusNames holds the canonical spelling for each status.
var statusNames = map[Status]string{
	StatusUnknown:    "unknown",
	StatusPermanent:  "perm",
	StatusContractor: "contractor",
	StatusLeaving:    "leaving",
	StatusStarting:   "starting",
	StatusHiring:     "hiring",
	StatusMoving:     "moving",
}

// String returns the canonical name of the status.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

// ParseStatus maps a raw status string to its Status value.
// An empty string defaults to StatusPermanent. Unrecognized values return
// StatusUnknown and ok=false; callers decide whether to warn, but rendering
// always degrades to the baseline style instead of erroring.
func ParseStatus(raw string) (status Status, ok bool) {
	switch raw {
	case "":
		return StatusPermanent, true
	case "perm", "permanent":
		return StatusPermanent, true
	case "contractor":
		return StatusContractor, true
	case "leaving":
		return StatusLeaving, true
	case "starting", "hired":
		return StatusStarting, true
	case "hiring", "pending":
		return StatusHiring, true
	case "moving", "new":
		return StatusMoving, true
	default:
		return StatusUnknown, false
	}
}

// Relation is the kind of reporting relationship an edge represents.
// It drives the line style and color of the rendered edge.
type Relation int

const (
	// RelationUnknown is the fallback for absent or unrecognized relation values.
	RelationUnknown Relation = iota
	// RelationDirect is direct line management.
	RelationDirect
	// RelationIndirect is dotted-line (matrix) supervision.
	RelationIndirect
	// RelationJoining connects a manager to a hire who has not started yet.
	RelationJoining
	// RelationDeparting connects a manager to a leaver.
	RelationDeparting
)

// relationNames holds the canonical spelling for each relation.
var relationNames = map[Relation]string{
	RelationUnknown:   "unknown",
	RelationDirect:    "direct",
	RelationIndirect:  "indirect",
	RelationJoining:   "joining",
	RelationDeparting: "departing",
}

// String returns the canonical name of the relation.
func (r Relation) String() string {
	if name, ok := relationNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRelation maps a raw relationship value to its Relation.
// Both symbolic names and the legacy numeric codes (1 direct, 2 indirect,
// 3 joining, 4 departing) are accepted. An empty value defaults to
// RelationDirect. Unrecognized values return RelationUnknown and ok=false.
func ParseRelation(raw string) (rel Relation, ok bool) {
	switch raw {
	case "", "direct", "1":
		return RelationDirect, true
	case "indirect", "dotted", "2":
		return RelationIndirect, true
	case "joining", "starting", "3":
		return RelationJoining, true
	case "departing", "leaving", "4":
		return RelationDeparting, true
	default:
		return RelationUnknown, false
	}
}
