package models

// AspiringField is a student's declared career track. It is the primary
// grouping dimension for the dashboard aggregations.
type AspiringField string

const (
	AspiringDataAnalytics    AspiringField = "Data Analytics"
	AspiringMLEngineer       AspiringField = "ML Engineer"
	AspiringSoftwareEngineer AspiringField = "Software Engineer"

	// AspiringUnspecified is the synthetic bucket for students with no
	// declared track. It is never stored; Normalize produces it.
	AspiringUnspecified AspiringField = "Unspecified"
)

// KnownAspiringFields lists the values accepted at write time.
var KnownAspiringFields = []AspiringField{
	AspiringDataAnalytics,
	AspiringMLEngineer,
	AspiringSoftwareEngineer,
}

// Valid reports whether a is one of the declared career tracks.
func (a AspiringField) Valid() bool {
	for _, k := range KnownAspiringFields {
		if a == k {
			return true
		}
	}
	return false
}

// Normalize maps an absent value to AspiringUnspecified so aggregations
// never drop students that have not declared a track.
func (a AspiringField) Normalize() AspiringField {
	if a == "" {
		return AspiringUnspecified
	}
	return a
}
