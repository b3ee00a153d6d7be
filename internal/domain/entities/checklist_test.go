package entities

import (
	"reflect"
	"testing"
)

func TestNewChecklist(t *testing.T) {
	c := NewChecklist()

	for _, section := range ChecklistSections {
		items := c.Section(section)
		if len(items) == 0 {
			t.Fatalf("section %s is empty", section)
		}
		if len(items) != len(checklistTemplate[section]) {
			t.Fatalf("section %s: expected %d items, got %d", section, len(checklistTemplate[section]), len(items))
		}
		for i, item := range items {
			if item.Label != checklistTemplate[section][i] {
				t.Fatalf("section %s item %d: expected label %q, got %q", section, i, checklistTemplate[section][i], item.Label)
			}
			if item.OK || item.RequiresAttention {
				t.Fatalf("section %s item %d: expected both flags false", section, i)
			}
		}
	}
}

func TestChecklist_SectionUnknown(t *testing.T) {
	c := NewChecklist()
	if got := c.Section("boilers"); got != nil {
		t.Fatalf("expected nil for unknown section, got %v", got)
	}
}

func TestChecklist_ToggleOK(t *testing.T) {
	t.Run("double toggle restores original", func(t *testing.T) {
		c := NewChecklist()
		before := c.Compressors[1]

		if err := c.ToggleOK(SectionCompressors, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !c.Compressors[1].OK {
			t.Fatalf("expected ok true after first toggle")
		}
		if err := c.ToggleOK(SectionCompressors, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Compressors[1] != before {
			t.Fatalf("expected item restored, got %+v", c.Compressors[1])
		}
	})

	t.Run("does not affect requires attention", func(t *testing.T) {
		c := NewChecklist()
		snapshot := NewChecklist()

		if err := c.ToggleOK(SectionEvaporator, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, section := range ChecklistSections {
			for i, item := range c.Section(section) {
				want := snapshot.Section(section)[i]
				if section == SectionEvaporator && i == 2 {
					want.OK = true
				}
				if item != want {
					t.Fatalf("section %s item %d changed unexpectedly: %+v", section, i, item)
				}
			}
		}
	})

	t.Run("unknown section", func(t *testing.T) {
		c := NewChecklist()
		if err := c.ToggleOK("boilers", 0); err != ErrUnknownChecklistSection {
			t.Fatalf("expected ErrUnknownChecklistSection, got %v", err)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		c := NewChecklist()
		if err := c.ToggleOK(SectionCondenser, 99); err != ErrChecklistIndexOutOfRange {
			t.Fatalf("expected ErrChecklistIndexOutOfRange, got %v", err)
		}
		if err := c.ToggleOK(SectionCondenser, -1); err != ErrChecklistIndexOutOfRange {
			t.Fatalf("expected ErrChecklistIndexOutOfRange, got %v", err)
		}
	})
}

func TestChecklist_ToggleRequiresAttention(t *testing.T) {
	c := NewChecklist()

	if err := c.ToggleRequiresAttention(SectionOther, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Other[0].RequiresAttention {
		t.Fatalf("expected requires attention set")
	}
	if c.Other[0].OK {
		t.Fatalf("toggling requires attention must not set ok")
	}

	// Both flags may be true simultaneously.
	if err := c.ToggleOK(SectionOther, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Other[0].OK || !c.Other[0].RequiresAttention {
		t.Fatalf("expected both flags true, got %+v", c.Other[0])
	}
}

func TestChecklist_Totals(t *testing.T) {
	c := NewChecklist()
	if ok, attention := c.Totals(); ok != 0 || attention != 0 {
		t.Fatalf("expected zero totals on fresh checklist, got %d/%d", ok, attention)
	}

	_ = c.ToggleOK(SectionCompressors, 0)
	_ = c.ToggleOK(SectionCondenser, 1)
	_ = c.ToggleRequiresAttention(SectionCondenser, 1)

	ok, attention := c.Totals()
	if ok != 2 || attention != 1 {
		t.Fatalf("expected totals 2/1, got %d/%d", ok, attention)
	}
}

func TestChecklistSectionsMatchStructFields(t *testing.T) {
	// Every enumerated section must resolve to a struct field; display code
	// iterates ChecklistSections, never reflection.
	c := NewChecklist()
	fieldCount := reflect.TypeOf(c).NumField()
	if fieldCount != len(ChecklistSections) {
		t.Fatalf("Checklist has %d fields but %d enumerated sections", fieldCount, len(ChecklistSections))
	}
	for _, section := range ChecklistSections {
		if c.Section(section) == nil {
			t.Fatalf("section %s does not resolve", section)
		}
		if SectionTitles[section] == "" {
			t.Fatalf("section %s has no title", section)
		}
	}
}
