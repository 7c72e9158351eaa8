package domain

// Represents the planned visiting order for a single truck.
// Cities starts and ends at the depot and lists every other
// destination of the truck exactly once in between.
type Route struct {
	TruckNumber int
	Strategy    string
	Depot       string
	Cities      []string
	Warnings    []Warning
}

// Stops returns the destinations between the two depot visits.
func (r *Route) Stops() []string {
	if len(r.Cities) < 2 {
		return nil
	}
	return r.Cities[1 : len(r.Cities)-1]
}
