package catalog

import "testing"

func TestFareMultipliesCatalogPrice(t *testing.T) {
	c := Default()
	for _, svc := range c.Services() {
		for seats := MinSeats; seats <= MaxSeats; seats++ {
			got := c.Fare(svc.Name, seats)
			want := svc.Price * int64(seats)
			if got != want {
				t.Fatalf("Fare(%q, %d) = %d, want %d", svc.Name, seats, got, want)
			}
		}
	}
}

func TestFareUnknownServiceIsZero(t *testing.T) {
	c := Default()
	for _, seats := range []int{1, 3, 6, 99} {
		if got := c.Fare("Ghost Line", seats); got != 0 {
			t.Fatalf("Fare(unknown, %d) = %d, want 0", seats, got)
		}
	}
	if c.HasService("Ghost Line") {
		t.Fatalf("HasService reported an unknown service")
	}
}

func TestKnownServiceAndCity(t *testing.T) {
	c := Default()
	if !c.HasService("Star Travels") {
		t.Fatalf("Star Travels missing from catalog")
	}
	if got := c.Price("Star Travels"); got != 1600 {
		t.Fatalf("Price(Star Travels) = %d, want 1600", got)
	}
	for _, city := range []string{"Nintavur", "Kandy", "Nuwara Eliya"} {
		if !c.HasCity(city) {
			t.Fatalf("HasCity(%q) = false", city)
		}
	}
	if c.HasCity("Colombo") {
		t.Fatalf("Colombo should not be in the served list")
	}
}

func TestAccessorsCopy(t *testing.T) {
	c := Default()
	cities := c.Cities()
	cities[0] = "Mutated"
	if c.Cities()[0] == "Mutated" {
		t.Fatalf("Cities() leaked the internal slice")
	}
	svcs := c.Services()
	svcs[0].Price = -1
	if c.Services()[0].Price == -1 {
		t.Fatalf("Services() leaked the internal slice")
	}
}
