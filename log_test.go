package main

import "testing"

func TestLogDuplicates(t *testing.T) {
	md := &model{}
	md.Log("you cannot go there.")
	md.Log("You cannot go there.")
	md.LogStyled("Seed too large.", logError)
	if len(md.logs.Entries) != 2 {
		t.Fatalf("%d entries", len(md.logs.Entries))
	}
	e := md.logs.Entries[0]
	if e.Text != "You cannot go there." || e.Dups != 1 {
		t.Errorf("bad first entry %+v", e)
	}
	if e.MText != "@NYou cannot go there. (2×)@N" {
		t.Errorf("bad markup %q", e.MText)
	}
	if e := md.logs.Entries[1]; e.MText != "@RSeed too large.@N" {
		t.Errorf("bad error markup %q", e.MText)
	}
	if md.DrawLog().Text() == "" {
		t.Errorf("empty drawn log")
	}
}

func TestUpperFirst(t *testing.T) {
	for s, want := range map[string]string{"": "", "floor": "Floor", "éa": "Éa", "42": "42"} {
		if got := UpperFirst(s); got != want {
			t.Errorf("UpperFirst(%q) = %q", s, got)
		}
	}
}
