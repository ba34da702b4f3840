package catalog

import (
	"testing"
)

func TestPartition_SplitsAndFiltersComponents(t *testing.T) {
	components := []Component{
		{ID: "c1", Name: "Coordination", Price: d("30000"), Category: CategoryCoordination, Source: SourceCatalog, Included: true},
		{ID: "c2", Name: "Catering", Price: d("50000"), Category: CategoryCatering, Source: SourceCatalog, Included: false},
		{ID: "v1", Name: "Sound system", Price: d("10000"), Category: CategoryVenue, Source: SourceVenueLocked, Included: true},
	}

	venueLocked, catalogItems := Partition(components)

	if len(catalogItems) != 1 || catalogItems[0].ID != "c1" {
		t.Fatalf("catalogItems = %v, want only the included catalog component", catalogItems)
	}
	if len(venueLocked) != 1 || venueLocked[0].ID != "v1" {
		t.Fatalf("venueLocked = %v, want only the venue inclusion", venueLocked)
	}
}

func TestEffectivePrice_SelectedOptionWins(t *testing.T) {
	c := Component{
		ID:    "hall",
		Price: d("10000"),
		VenueOptions: []VenueChoice{
			{ID: "opt-1", Name: "Garden", Price: d("40000"), MaxGuests: 150},
			{ID: "opt-2", Name: "Ballroom", Price: d("60000"), MaxGuests: 300},
		},
	}

	if !c.EffectivePrice().Equal(d("10000")) {
		t.Fatalf("EffectivePrice = %s, want base price with no selection", c.EffectivePrice())
	}

	if err := c.SelectOption("opt-2"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if !c.EffectivePrice().Equal(d("60000")) {
		t.Fatalf("EffectivePrice = %s, want 60000 after selection", c.EffectivePrice())
	}

	// selecting the other option replaces the first, never stacks
	if err := c.SelectOption("opt-1"); err != nil {
		t.Fatalf("SelectOption: %v", err)
	}
	if !c.EffectivePrice().Equal(d("40000")) {
		t.Fatalf("EffectivePrice = %s, want 40000", c.EffectivePrice())
	}

	if err := c.SelectOption(""); err != nil {
		t.Fatalf("SelectOption(clear): %v", err)
	}
	if !c.EffectivePrice().Equal(d("10000")) {
		t.Fatalf("EffectivePrice = %s, want base price after clearing", c.EffectivePrice())
	}
}

func TestSelectOption_UnknownOptionRejected(t *testing.T) {
	c := Component{ID: "hall", VenueOptions: []VenueChoice{{ID: "opt-1", Price: d("40000")}}}
	if err := c.SelectOption("nope"); err == nil {
		t.Fatal("SelectOption(nope) = nil, want error")
	}
	if c.SelectedOptionID != "" {
		t.Fatalf("SelectedOptionID = %s after rejected selection, want empty", c.SelectedOptionID)
	}
}

func TestInclusionComponents_AreLockedAndNotRemovable(t *testing.T) {
	venue := Venue{
		ID:    "v1",
		Title: "Grand Hall",
		Price: d("30000"),
		Inclusions: []VenueInclusion{
			{Name: "Sound system", Price: d("10000")},
			{Name: "Basic lighting", Price: d("5000")},
		},
	}

	components := venue.InclusionComponents()

	if len(components) != 2 {
		t.Fatalf("len = %d, want 2", len(components))
	}
	for _, c := range components {
		if c.Source != SourceVenueLocked {
			t.Errorf("%s: Source = %s, want venue_locked", c.Name, c.Source)
		}
		if c.Removable {
			t.Errorf("%s: Removable = true, want false", c.Name)
		}
		if !c.Included {
			t.Errorf("%s: Included = false, want true", c.Name)
		}
	}
}
