package domain

import "testing"

func TestLevel_IsValid(t *testing.T) {
	t.Parallel()

	valid := []Level{LevelBeginner, LevelIntermediate, LevelAdvanced}
	for _, l := range valid {
		if !l.IsValid() {
			t.Errorf("Level(%q).IsValid() = false, want true", l)
		}
	}

	invalid := []Level{"", "expert", "BEGINNER", "Intermediate"}
	for _, l := range invalid {
		if l.IsValid() {
			t.Errorf("Level(%q).IsValid() = true, want false", l)
		}
	}
}

func TestLevel_OrDefault(t *testing.T) {
	t.Parallel()

	if got := Level("expert").OrDefault(); got != LevelIntermediate {
		t.Errorf("OrDefault() = %q, want %q", got, LevelIntermediate)
	}
	if got := LevelAdvanced.OrDefault(); got != LevelAdvanced {
		t.Errorf("OrDefault() = %q, want %q", got, LevelAdvanced)
	}
}

func TestEntry_WordFormsMap(t *testing.T) {
	t.Parallel()

	e := &Entry{
		WordForms: []WordForm{
			{FormType: "plural", FormWord: "hellos"},
			{FormType: "past", FormWord: "helloed"},
		},
	}

	m := e.WordFormsMap()
	if len(m) != 2 || m["plural"] != "hellos" || m["past"] != "helloed" {
		t.Errorf("WordFormsMap() = %v", m)
	}

	empty := &Entry{}
	if empty.WordFormsMap() != nil {
		t.Error("WordFormsMap() on empty entry should be nil")
	}
}
