package config

// Layout of the generated token document.
// ENUM(grouped, flat)
type OutputLayout int

// Grouped reports whether tokens are placed under type groups.
func (o OutputLayout) Grouped() bool {
	return o == OutputLayoutGrouped
}
