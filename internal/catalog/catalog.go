// Package catalog holds the fixed commercial data of the Lagan fleet: coach
// services and their per-seat fares, the served cities, and the bank and
// support details shown alongside the booking form. The data is build-time
// constant; Default() hands out an immutable view of it.
package catalog

import "strings"

// Seat bounds enforced by the booking form's stepper control. The submit
// validator deliberately does not re-check them.
const (
	MinSeats = 1
	MaxSeats = 6
)

// Currency for every fare in the catalog. Amounts are whole rupees.
const Currency = "LKR"

// Service is one coach operator with its per-seat fare.
type Service struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// BankDetails is the transfer target for out-of-band payment.
type BankDetails struct {
	Bank        string `json:"bank"`
	AccountName string `json:"account_name"`
	AccountNo   string `json:"account_no"`
	Branch      string `json:"branch"`
	Reference   string `json:"reference"`
}

// Support describes the human escalation channel.
type Support struct {
	Hours   string `json:"hours"`
	Contact string `json:"contact"`
	Name    string `json:"name"`
}

// Catalog is the immutable pricing/route configuration. Construct via
// Default() and pass it explicitly; accessors copy anything mutable out.
type Catalog struct {
	services []Service
	prices   map[string]int64
	cities   []string
	bank     BankDetails
	support  Support
}

var defaultServices = []Service{
	{Name: "Sakeer Express", Price: 2700},
	{Name: "RS Express", Price: 2900},
	{Name: "Myown Express", Price: 2700},
	{Name: "Al Ahla", Price: 2800},
	{Name: "Al Rashith", Price: 2700},
	{Name: "Star Travels", Price: 1600},
	{Name: "Lloyds Travels", Price: 2700},
	{Name: "Super Line", Price: 2700},
}

var defaultCities = []string{
	"Nintavur", "Addalaichenai", "Akkaraipattu", "Pottuvil", "Panama",
	"Lahugala", "Monaragala", "Bibile", "Medagama", "Wellawaya",
	"Badulla", "Bandarawela", "Hali-Ela", "Passara", "Mahiyanganaya",
	"Kandy", "Peradeniya", "Gampola", "Nawalapitiya", "Hatton",
	"Nanu Oya", "Nuwara Eliya", "Kalmunai", "Sainthamaruthu",
}

// Default builds the production catalog.
func Default() Catalog {
	prices := make(map[string]int64, len(defaultServices))
	for _, s := range defaultServices {
		prices[s.Name] = s.Price
	}
	return Catalog{
		services: defaultServices,
		prices:   prices,
		cities:   defaultCities,
		bank: BankDetails{
			Bank:        "HNB Bank",
			AccountName: "LAGAN BUS SERVICES",
			AccountNo:   "123456789012",
			Branch:      "Nintavur",
			Reference:   "Name + Phone",
		},
		support: Support{
			Hours:   "7:00 AM - 10:00 PM",
			Contact: "+94701362527",
			Name:    "Mr. Fawas",
		},
	}
}

// Price returns the per-seat fare for a service, 0 when unknown. Callers must
// treat a zero total as an incomplete selection, not a free fare.
func (c Catalog) Price(service string) int64 {
	return c.prices[strings.TrimSpace(service)]
}

// Fare is the total for seatCount seats on a service.
func (c Catalog) Fare(service string, seatCount int) int64 {
	return c.Price(service) * int64(seatCount)
}

// HasService reports whether the named coach service is sold.
func (c Catalog) HasService(service string) bool {
	_, ok := c.prices[strings.TrimSpace(service)]
	return ok
}

// HasCity reports whether a city is on the served list.
func (c Catalog) HasCity(city string) bool {
	city = strings.TrimSpace(city)
	for _, known := range c.cities {
		if known == city {
			return true
		}
	}
	return false
}

// Services returns the coach services in display order.
func (c Catalog) Services() []Service {
	out := make([]Service, len(c.services))
	copy(out, c.services)
	return out
}

// Cities returns the served cities in display order.
func (c Catalog) Cities() []string {
	out := make([]string, len(c.cities))
	copy(out, c.cities)
	return out
}

func (c Catalog) Bank() BankDetails { return c.bank }

func (c Catalog) Support() Support { return c.support }
