package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/asciihero/internal/world"
)

func TestLoadMonsters(t *testing.T) {
	monsters, err := LoadMonsters()
	if err != nil {
		t.Fatalf("Failed to load monsters: %v", err)
	}

	if len(monsters) != 2 {
		t.Errorf("Expected 2 monsters, got %d", len(monsters))
	}

	expectedIDs := map[string]bool{"goblin": false, "orc": false}
	for _, m := range monsters {
		if _, ok := expectedIDs[m.ID]; ok {
			expectedIDs[m.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected monster %q not found", id)
		}
	}
}

func TestMonsterRegistry(t *testing.T) {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 2 {
		t.Errorf("Expected 2 monster kinds, got %d", registry.Count())
	}

	orc := registry.GetByID("orc")
	if orc == nil {
		t.Fatal("Orc not found by ID")
	}
	if orc.Name != "Orc" || orc.GlyphRune() != 'o' {
		t.Errorf("Orc = %+v", orc)
	}
	if registry.GetByID("dragon") != nil {
		t.Error("GetByID should return nil for unknown IDs")
	}

	all := registry.All()
	if len(all) != registry.Count() {
		t.Errorf("All() returned %d kinds, Count() = %d", len(all), registry.Count())
	}
	for _, m := range all {
		if got := registry.GetByID(m.ID); got == nil || got.Name != m.Name {
			t.Errorf("GetByID(%q) = %+v, want %s", m.ID, got, m.Name)
		}
		if m.SpawnWeight <= 0 {
			t.Errorf("%s has spawn weight %d, want positive", m.ID, m.SpawnWeight)
		}
	}

	// Weighted spawning is deterministic with the same seed
	rng1 := world.NewRNG(12345)
	rng2 := world.NewRNG(12345)
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		a, b := registry.SpawnRandom(rng1), registry.SpawnRandom(rng2)
		if a.ID != b.ID {
			t.Fatalf("Spawn %d mismatch: %s != %s", i, a.ID, b.ID)
		}
		seen[a.ID] = true
	}
	if len(seen) != 2 {
		t.Errorf("50 weighted spawns produced kinds %v, want both", seen)
	}
}

func TestSpawnRandomRespectsWeights(t *testing.T) {
	registry := NewMonsterRegistry([]MonsterDef{
		{ID: "never", SpawnWeight: 0},
		{ID: "always", SpawnWeight: 10},
	})
	rng := world.NewRNG(1)
	for i := 0; i < 20; i++ {
		if got := registry.SpawnRandom(rng).ID; got != "always" {
			t.Fatalf("SpawnRandom() = %q, want always", got)
		}
	}

	empty := NewMonsterRegistry(nil)
	if empty.SpawnRandom(rng) != nil {
		t.Error("SpawnRandom() on an empty registry should return nil")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestMonsterDefMethods(t *testing.T) {
	def := MonsterDef{ID: "test", Glyph: "T", Color: "#00FF00"}
	if def.GlyphRune() != 'T' {
		t.Errorf("Expected glyph 'T', got %c", def.GlyphRune())
	}
	if def.TCellColor() != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("TCellColor() = %v", def.TCellColor())
	}

	blank := MonsterDef{Color: "nope"}
	if blank.GlyphRune() != '?' || blank.TCellColor() != tcell.ColorRed {
		t.Error("fallbacks not applied")
	}
}

func TestLoadUnknownFile(t *testing.T) {
	if _, err := Load[MonstersFile]("items.json"); err == nil {
		t.Error("Load() should fail for a file that is not embedded")
	}
}
