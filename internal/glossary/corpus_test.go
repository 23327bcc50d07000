// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package glossary

import (
	"reflect"
	"testing"

	"github.com/pdiddy/acronym-table/internal/acronym"
)

func strPtr(s string) *string { return &s }

func TestCorpusMerge(t *testing.T) {
	c := NewCorpus()
	var resolved [][]string
	resolve := func(acronyms, paragraphs []string) map[string]*string {
		resolved = append(resolved, acronyms)
		return acronym.Definitions(acronyms, paragraphs)
	}

	fresh := c.Merge("a.tex", []string{"DT", "CHT", "DT"},
		[]string{"Decay Time (DT) and CHT"}, resolve)
	if want := []string{"CHT", "DT"}; !reflect.DeepEqual(fresh, want) {
		t.Errorf("first merge fresh = %v, want %v", fresh, want)
	}

	fresh = c.Merge("b.tex", []string{"DT", "HVAC"},
		[]string{"Data Transfer (DT)", "Heating Ventilation And Cooling (HVAC) "}, resolve)
	if want := []string{"HVAC"}; !reflect.DeepEqual(fresh, want) {
		t.Errorf("second merge fresh = %v, want %v", fresh, want)
	}

	if want := [][]string{{"CHT", "DT"}, {"HVAC"}}; !reflect.DeepEqual(resolved, want) {
		t.Errorf("resolver calls = %v, want %v", resolved, want)
	}

	def, ok := c.Definition("DT")
	if !ok || def == nil || *def != "Decay Time " {
		t.Errorf("DT definition = %v, want %q from the first file", def, "Decay Time ")
	}
	def, ok = c.Definition("CHT")
	if !ok || def != nil {
		t.Errorf("CHT should be recorded without definition, got %v (known=%v)", def, ok)
	}
	if _, ok := c.Definition("XY"); ok {
		t.Error("XY should not be in the corpus")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestCorpusMergeKeepsMissingDefinition(t *testing.T) {
	c := NewCorpus()
	resolve := func(acronyms, paragraphs []string) map[string]*string {
		return acronym.Definitions(acronyms, paragraphs)
	}

	c.Merge("a.tex", []string{"DT"}, []string{"the DT is unexplained"}, resolve)
	c.Merge("b.tex", []string{"DT"}, []string{"Decay Time (DT)"}, resolve)

	def, _ := c.Definition("DT")
	if def != nil {
		t.Errorf("DT definition = %q, want none: later files must not overwrite", *def)
	}
}

func TestCorpusMergeNilResolver(t *testing.T) {
	c := NewCorpus()
	c.Merge("a.tex", []string{"DT"}, []string{"Decay Time (DT)"}, nil)

	def, ok := c.Definition("DT")
	if !ok || def != nil {
		t.Errorf("DT = %v (known=%v), want known without definition", def, ok)
	}
}

func TestCorpusEntries(t *testing.T) {
	c := NewCorpus()
	c.Merge("b.tex", []string{"ZZ", "AB"}, nil, func(a, p []string) map[string]*string {
		return map[string]*string{"AB": strPtr("Alpha Beta ")}
	})
	c.Merge("a.tex", []string{"MM", "AB"}, nil, nil)

	entries := c.Entries()
	var got []string
	for _, e := range entries {
		got = append(got, e.Acronym)
	}
	if want := []string{"AB", "MM", "ZZ"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("entries = %v, want %v", got, want)
	}
	if entries[0].Description() != "Alpha Beta " || entries[0].Source != "b.tex" {
		t.Errorf("AB entry = %+v", entries[0])
	}
	if entries[1].Description() != "" || entries[1].Source != "a.tex" {
		t.Errorf("MM entry = %+v", entries[1])
	}
}

func TestCorpusEntriesEmpty(t *testing.T) {
	if got := NewCorpus().Entries(); len(got) != 0 {
		t.Errorf("Entries() = %v, want empty", got)
	}
}
