package org

import (
	"strings"

	apperrors "github.com/tidyorg/orgchart/pkg/errors"
)

// BuildOptions controls display-form normalization during graph construction.
type BuildOptions struct {
	// Newline wraps display names, job titles, and notes at the first space,
	// so long entries stack inside the rendered box instead of widening it.
	Newline bool
}

// Build assembles a validated [Document] into a [Graph].
//
// Person attributes are carried verbatim except for display normalization:
// team names are uppercased, and when opts.Newline is set the display name,
// job title, and note each get a line break at their first space (entries
// without a space are left unchanged). Statuses and relationship kinds are
// resolved to their closed enum sets; unrecognized values map to the Unknown
// variant rather than failing.
//
// The referential invariants are re-checked while inserting - a duplicate id,
// dangling edge reference, or self-loop that somehow survived loading is
// reported as a GRAPH_BUILD_ERROR naming the offending record.
func Build(doc *Document, opts BuildOptions) (*Graph, error) {
	g := NewGraph()

	for _, rec := range doc.Nodes {
		status, _ := ParseStatus(rec.Status)
		p := Person{
			ID:      rec.ID,
			Display: wrapIf(rec.ID, opts.Newline),
			Label:   wrapIf(rec.Label, opts.Newline),
			Team:    strings.ToUpper(rec.Team),
			Status:  status,
			Manager: bool(rec.Manager),
			Note:    wrapIf(rec.Note, opts.Newline),
			Rank:    rec.Rank,
		}
		if err := g.AddPerson(p); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeGraphBuild, err, "node %q", rec.ID)
		}
	}

	for _, rec := range doc.Edges {
		rel, _ := ParseRelation(string(rec.Relationship))
		e := Reporting{
			From:     rec.Source,
			To:       rec.Target,
			Relation: rel,
			Label:    rec.Label,
		}
		if err := g.AddReporting(e); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeGraphBuild, err,
				"edge %q -> %q", rec.Source, rec.Target)
		}
	}

	return g, nil
}

// WrapFirst inserts a line break at the first space of s.
// Strings without a space are returned unchanged. Only the first space is
// replaced; the remainder of the string keeps its spacing.
func WrapFirst(s string) string {
	return strings.Join(strings.SplitN(s, " ", 2), "\n")
}

func wrapIf(s string, wrap bool) string {
	if !wrap {
		return s
	}
	return WrapFirst(s)
}
