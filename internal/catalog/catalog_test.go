package catalog

import "testing"

func TestNew_RejectsInvalidSeeds(t *testing.T) {
	tests := []struct {
		name string
		seed []RoomType
	}{
		{"empty seed", nil},
		{"empty code", []RoomType{{Code: "", Name: "X", HourlyPriceCents: 100, TotalRooms: 1}}},
		{"duplicate code", []RoomType{
			{Code: "A", Name: "First", HourlyPriceCents: 100, TotalRooms: 1},
			{Code: "A", Name: "Second", HourlyPriceCents: 200, TotalRooms: 2},
		}},
		{"negative price", []RoomType{{Code: "A", Name: "X", HourlyPriceCents: -1, TotalRooms: 1}}},
		{"zero rooms", []RoomType{{Code: "A", Name: "X", HourlyPriceCents: 100, TotalRooms: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.seed); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestTypeByCode(t *testing.T) {
	c := Default()

	rt, ok := c.TypeByCode("B")
	if !ok {
		t.Fatal("expected type B to exist")
	}
	if rt.Name != "Room type B" || rt.HourlyPriceCents != 8000 || rt.TotalRooms != 3 {
		t.Errorf("unexpected room type: %+v", rt)
	}

	if _, ok := c.TypeByCode("Z"); ok {
		t.Error("expected type Z to be unknown")
	}
}

func TestTypes_SeedOrder(t *testing.T) {
	c := Default()

	types := c.Types()
	if len(types) != 3 {
		t.Fatalf("expected 3 types, got %d", len(types))
	}
	for i, code := range []string{"A", "B", "C"} {
		if types[i].Code != code {
			t.Errorf("position %d: expected code %s, got %s", i, code, types[i].Code)
		}
	}
}
