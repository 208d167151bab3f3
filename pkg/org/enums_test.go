package org

import "testing"

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Status
		wantOK bool
	}{
		{"empty defaults to permanent", "", StatusPermanent, true},
		{"perm", "perm", StatusPermanent, true},
		{"permanent alias", "permanent", StatusPermanent, true},
		{"contractor", "contractor", StatusContractor, true},
		{"leaving", "leaving", StatusLeaving, true},
		{"starting", "starting", StatusStarting, true},
		{"hired alias", "hired", StatusStarting, true},
		{"hiring", "hiring", StatusHiring, true},
		{"pending alias", "pending", StatusHiring, true},
		{"moving", "moving", StatusMoving, true},
		{"new alias", "new", StatusMoving, true},
		{"unrecognized", "sabbatical", StatusUnknown, false},
		{"case-sensitive", "Perm", StatusUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseStatus(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseStatus(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseRelation(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   Relation
		wantOK bool
	}{
		{"empty defaults to direct", "", RelationDirect, true},
		{"direct", "direct", RelationDirect, true},
		{"numeric direct", "1", RelationDirect, true},
		{"indirect", "indirect", RelationIndirect, true},
		{"dotted alias", "dotted", RelationIndirect, true},
		{"numeric indirect", "2", RelationIndirect, true},
		{"joining", "joining", RelationJoining, true},
		{"numeric joining", "3", RelationJoining, true},
		{"departing", "departing", RelationDeparting, true},
		{"numeric departing", "4", RelationDeparting, true},
		{"unrecognized", "mentor", RelationUnknown, false},
		{"out-of-range code", "5", RelationUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseRelation(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseRelation(%q) = (%v, %v), want (%v, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestStatusString(t *testing.T) {
	if got := StatusContractor.String(); got != "contractor" {
		t.Errorf("StatusContractor.String() = %q, want %q", got, "contractor")
	}
	if got := Status(99).String(); got != "unknown" {
		t.Errorf("Status(99).String() = %q, want %q", got, "unknown")
	}
}

func TestRelationString(t *testing.T) {
	if got := RelationIndirect.String(); got != "indirect" {
		t.Errorf("RelationIndirect.String() = %q, want %q", got, "indirect")
	}
	if got := Relation(99).String(); got != "unknown" {
		t.Errorf("Relation(99).String() = %q, want %q", got, "unknown")
	}
}
