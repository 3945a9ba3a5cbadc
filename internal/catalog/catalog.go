package catalog

import "fmt"

// RoomType is a catalog row. Defined at process start, never mutated.
type RoomType struct {
	Code             string `json:"code"`
	Name             string `json:"name"`
	HourlyPriceCents int64  `json:"hourly_price_cents"`
	TotalRooms       int    `json:"total_rooms"`
}

// Catalog is the fixed set of room types the property offers.
type Catalog struct {
	byCode map[string]RoomType
	order  []string
}

// New builds a catalog from a seed table. The seed is validated once
// here so the rest of the service can trust every row.
func New(seed []RoomType) (*Catalog, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("catalog seed cannot be empty")
	}

	c := &Catalog{
		byCode: make(map[string]RoomType, len(seed)),
		order:  make([]string, 0, len(seed)),
	}

	for _, rt := range seed {
		if rt.Code == "" {
			return nil, fmt.Errorf("room type with empty code")
		}
		if _, exists := c.byCode[rt.Code]; exists {
			return nil, fmt.Errorf("duplicate room type code %q", rt.Code)
		}
		if rt.HourlyPriceCents < 0 {
			return nil, fmt.Errorf("room type %q has negative hourly price", rt.Code)
		}
		if rt.TotalRooms <= 0 {
			return nil, fmt.Errorf("room type %q must have at least one room", rt.Code)
		}

		c.byCode[rt.Code] = rt
		c.order = append(c.order, rt.Code)
	}

	return c, nil
}

// Default returns the property's standard three-type catalog.
func Default() *Catalog {
	c, err := New([]RoomType{
		{Code: "A", Name: "Room type A", HourlyPriceCents: 10000, TotalRooms: 2},
		{Code: "B", Name: "Room type B", HourlyPriceCents: 8000, TotalRooms: 3},
		{Code: "C", Name: "Room type C", HourlyPriceCents: 5000, TotalRooms: 5},
	})
	if err != nil {
		panic(err)
	}
	return c
}

// TypeByCode looks up a room type; the second return reports whether
// the code exists.
func (c *Catalog) TypeByCode(code string) (RoomType, bool) {
	rt, ok := c.byCode[code]
	return rt, ok
}

// Types returns all room types in seed order.
func (c *Catalog) Types() []RoomType {
	types := make([]RoomType, 0, len(c.order))
	for _, code := range c.order {
		types = append(types, c.byCode[code])
	}
	return types
}
