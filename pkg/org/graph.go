package org

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddPerson] when the person ID is
	// empty. All people must have non-empty identifiers.
	ErrInvalidNodeID = errors.New("person ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddPerson] when a person with
	// the same ID already exists in the graph. IDs must be unique.
	ErrDuplicateNodeID = errors.New("duplicate person ID")

	// ErrUnknownSourceNode is returned by [Graph.AddReporting] when the From
	// person does not exist in the graph.
	ErrUnknownSourceNode = errors.New("unknown source person")

	// ErrUnknownTargetNode is returned by [Graph.AddReporting] when the To
	// person does not exist in the graph.
	ErrUnknownTargetNode = errors.New("unknown target person")

	// ErrSelfLoop is returned by [Graph.AddReporting] when From and To name
	// the same person. Nobody reports to themselves.
	ErrSelfLoop = errors.New("self-loop reporting relationship")

	// ErrInvalidEdgeEndpoint is returned by [Graph.Validate] when an edge
	// references a person that doesn't exist. This indicates graph corruption.
	ErrInvalidEdgeEndpoint = errors.New("invalid edge endpoint")
)

// Person is a vertex in the org graph: one human, with their display
// attributes already normalized for rendering.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Person struct {
	ID      string // Unique identifier, verbatim from the source
	Display string // Display name, possibly wrapped at the first space
	Label   string // Job title, possibly wrapped at the first space
	Team    string // Team name in uppercased display form
	Status  Status
	Manager bool
	Note    string // Free-text annotation, possibly wrapped
	Rank    string // Free-text seniority marker, carried verbatim
}

// DisplayName returns the wrapped display form if set, otherwise the ID.
func (p *Person) DisplayName() string {
	if p.Display != "" {
		return p.Display
	}
	return p.ID
}

// Reporting is a directed edge in the org graph: who reports to whom, and in
// what capacity. Multiple edges of different kinds between the same pair are
// permitted (a person can have both a direct and a dotted-line manager).
type Reporting struct {
	From     string // Manager's person ID
	To       string // Report's person ID
	Relation Relation
	Label    string // Optional edge annotation
}

// Graph is a directed multigraph of people and reporting relationships.
// Insertion order of both people and edges is preserved, which makes exports
// deterministic. Cycles are permitted: matrix organisations with dotted-line
// supervision are not strictly hierarchical.
//
// The zero value is not usable - use NewGraph. Graph is not safe for
// concurrent use without external synchronization, but the whole pipeline is
// single-shot and single-threaded so this never matters in practice.
type Graph struct {
	people   map[string]*Person
	order    []string // person IDs in insertion order
	edges    []Reporting
	outgoing map[string][]string // person ID -> report IDs
	incoming map[string][]string // person ID -> manager IDs
}

// NewGraph creates an empty org graph.
func NewGraph() *Graph {
	return &Graph{
		people:   make(map[string]*Person),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
	}
}

// AddPerson adds a person to the graph.
// Returns ErrInvalidNodeID if the ID is empty, or ErrDuplicateNodeID if a
// person with the same ID already exists.
func (g *Graph) AddPerson(p Person) error {
	if p.ID == "" {
		return ErrInvalidNodeID
	}
	if _, exists := g.people[p.ID]; exists {
		return ErrDuplicateNodeID
	}
	person := &p
	g.people[person.ID] = person
	g.order = append(g.order, person.ID)
	return nil
}

// AddReporting adds a directed reporting edge between two existing people.
// Returns ErrUnknownSourceNode or ErrUnknownTargetNode if either endpoint is
// missing, or ErrSelfLoop if both endpoints name the same person.
func (g *Graph) AddReporting(e Reporting) error {
	if _, ok := g.people[e.From]; !ok {
		return ErrUnknownSourceNode
	}
	if _, ok := g.people[e.To]; !ok {
		return ErrUnknownTargetNode
	}
	if e.From == e.To {
		return ErrSelfLoop
	}
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e.To)
	g.incoming[e.To] = append(g.incoming[e.To], e.From)
	return nil
}

// People returns all people in insertion order.
// The returned slice contains pointers to the actual person structs, so
// modifications affect the graph.
func (g *Graph) People() []*Person {
	people := make([]*Person, len(g.order))
	for i, id := range g.order {
		people[i] = g.people[id]
	}
	return people
}

// Reportings returns a copy of all edges in insertion order.
func (g *Graph) Reportings() []Reporting { return slices.Clone(g.edges) }

// NodeCount returns the number of people in the graph.
func (g *Graph) NodeCount() int { return len(g.people) }

// EdgeCount returns the number of reporting edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Person returns the person with the given ID and true, or nil and false if
// not found.
func (g *Graph) Person(id string) (*Person, bool) {
	p, ok := g.people[id]
	return p, ok
}

// Reports returns the IDs of people this person manages (direct or otherwise).
// Returns nil if the person has no reports or doesn't exist. The returned
// slice should not be modified - use it as a read-only view.
func (g *Graph) Reports(id string) []string { return g.outgoing[id] }

// ManagersOf returns the IDs of people this person reports to.
// Returns nil if the person has no managers or doesn't exist.
func (g *Graph) ManagersOf(id string) []string { return g.incoming[id] }

// Roots returns people with no managers, in insertion order.
// For a conventional org chart this is the top of the hierarchy.
func (g *Graph) Roots() []*Person {
	var roots []*Person
	for _, id := range g.order {
		if len(g.incoming[id]) == 0 {
			roots = append(roots, g.people[id])
		}
	}
	return roots
}

// Validate checks referential integrity and returns nil if every edge
// connects two existing people. Unlike a dependency graph there is no
// acyclicity requirement: dotted-line supervision legitimately forms cycles.
// Returns ErrInvalidEdgeEndpoint on corruption.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.people[e.From]; !ok {
			return ErrInvalidEdgeEndpoint
		}
		if _, ok := g.people[e.To]; !ok {
			return ErrInvalidEdgeEndpoint
		}
	}
	return nil
}
