package stub

import "pinopoly/pkg/protocol"

// demoBoard seeds the stub with a recognizable ring of properties. Corners
// and a few squares per side are enough for every client view; the real
// server ships the full layout.
func demoBoard() []protocol.Property {
	return []protocol.Property{
		{ID: "go", Name: "GO", Position: 0},
		{ID: "mediterranean", Name: "Mediterranean Avenue", Group: "brown", Position: 1, Price: 60, Rent: 2, HouseCost: 50},
		{ID: "baltic", Name: "Baltic Avenue", Group: "brown", Position: 3, Price: 60, Rent: 4, HouseCost: 50},
		{ID: "reading-rr", Name: "Reading Railroad", Group: "railroad", Position: 5, Price: 200, Rent: 25},
		{ID: "oriental", Name: "Oriental Avenue", Group: "lightblue", Position: 6, Price: 100, Rent: 6, HouseCost: 50},
		{ID: "vermont", Name: "Vermont Avenue", Group: "lightblue", Position: 8, Price: 100, Rent: 6, HouseCost: 50},
		{ID: "jail", Name: "Jail", Position: 10},
		{ID: "st-charles", Name: "St. Charles Place", Group: "pink", Position: 11, Price: 140, Rent: 10, HouseCost: 100},
		{ID: "electric", Name: "Electric Company", Group: "utility", Position: 12, Price: 150, Rent: 8},
		{ID: "states", Name: "States Avenue", Group: "pink", Position: 13, Price: 140, Rent: 10, HouseCost: 100},
		{ID: "tennessee", Name: "Tennessee Avenue", Group: "orange", Position: 18, Price: 180, Rent: 14, HouseCost: 100},
		{ID: "free-parking", Name: "Free Parking", Position: 20},
		{ID: "kentucky", Name: "Kentucky Avenue", Group: "red", Position: 21, Price: 220, Rent: 18, HouseCost: 150},
		{ID: "illinois", Name: "Illinois Avenue", Group: "red", Position: 24, Price: 240, Rent: 20, HouseCost: 150},
		{ID: "marvin", Name: "Marvin Gardens", Group: "yellow", Position: 29, Price: 280, Rent: 24, HouseCost: 150},
		{ID: "go-to-jail", Name: "Go To Jail", Position: 30},
		{ID: "pacific", Name: "Pacific Avenue", Group: "green", Position: 31, Price: 300, Rent: 26, HouseCost: 200},
		{ID: "pennsylvania", Name: "Pennsylvania Avenue", Group: "green", Position: 34, Price: 320, Rent: 28, HouseCost: 200},
		{ID: "park-place", Name: "Park Place", Group: "darkblue", Position: 37, Price: 350, Rent: 35, HouseCost: 200},
		{ID: "boardwalk", Name: "Boardwalk", Group: "darkblue", Position: 39, Price: 400, Rent: 50, HouseCost: 200},
	}
}

func defaultRates() protocol.InterestRates {
	return protocol.InterestRates{
		BaseRate:  0.05,
		LoanRate:  0.08,
		CDRate:    0.03,
		HELOCRate: 0.06,
		Lap:       1,
	}
}
