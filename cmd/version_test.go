package cmd

import "testing"

func TestVersionReleaseNotesPopulated(t *testing.T) {
	if len(features) == 0 {
		t.Error("feature list is empty")
	}
	if len(changelog) == 0 {
		t.Fatal("changelog is empty")
	}
	if got := changelog[0].version; got != "1.0.0" {
		t.Errorf("changelog starts at %s, want 1.0.0", got)
	}
	for _, c := range changelog {
		if c.note == "" {
			t.Errorf("changelog entry %s has no note", c.version)
		}
	}
}
