package room

import "strings"

// FilterCriteria is a sparse set of constraints combined with AND semantics.
// Zero-value string fields and nil range bounds mean "no constraint on this
// axis". The boolean flags are one-directional on purpose: true requires the
// room flag to be set, false is not expressible as a filter. This mirrors the
// quick-filter buttons in the admin UI, which only ever filter FOR a feature.
type FilterCriteria struct {
	Search             string
	TypeID             string
	Status             Status
	Floor              Floor
	Building           string
	MinCapacity        *int
	MaxCapacity        *int
	MinRate            *float64
	MaxRate            *float64
	HasBalcony         bool
	HasKitchen         bool
	HasBathroom        bool
	HasAirConditioning bool
	HasWifi            bool
	EquipmentIDs       []string
}

func (c FilterCriteria) IsEmpty() bool {
	return c.Search == "" && c.TypeID == "" && c.Status == "" && c.Floor == "" &&
		c.Building == "" &&
		c.MinCapacity == nil && c.MaxCapacity == nil &&
		c.MinRate == nil && c.MaxRate == nil &&
		!c.HasBalcony && !c.HasKitchen && !c.HasBathroom &&
		!c.HasAirConditioning && !c.HasWifi &&
		len(c.EquipmentIDs) == 0
}

// TypeNameResolver resolves a room type id to its display name for free-text
// search. A false return means the id is unknown.
type TypeNameResolver func(typeID string) (string, bool)

// Matches reports whether the room satisfies every present criterion.
// An empty criteria value matches any room.
func (c FilterCriteria) Matches(r Room, resolveTypeName TypeNameResolver) bool {
	if c.Search != "" {
		query := strings.ToLower(c.Search)
		typeName := ""
		if resolveTypeName != nil {
			if name, ok := resolveTypeName(r.TypeID); ok {
				typeName = name
			}
		}
		if !strings.Contains(strings.ToLower(r.Code), query) &&
			!strings.Contains(strings.ToLower(typeName), query) &&
			!strings.Contains(strings.ToLower(r.Description), query) {
			return false
		}
	}

	if c.TypeID != "" && r.TypeID != c.TypeID {
		return false
	}
	if c.Status != "" && r.Status != c.Status {
		return false
	}
	if c.Floor != "" && r.Floor != c.Floor {
		return false
	}
	if c.Building != "" && r.Building != c.Building {
		return false
	}

	if c.MinCapacity != nil && r.Capacity < *c.MinCapacity {
		return false
	}
	if c.MaxCapacity != nil && r.Capacity > *c.MaxCapacity {
		return false
	}
	if c.MinRate != nil && r.DailyRate < *c.MinRate {
		return false
	}
	if c.MaxRate != nil && r.DailyRate > *c.MaxRate {
		return false
	}

	if c.HasBalcony && !r.HasBalcony {
		return false
	}
	if c.HasKitchen && !r.HasKitchen {
		return false
	}
	if c.HasBathroom && !r.HasBathroom {
		return false
	}
	if c.HasAirConditioning && !r.HasAirConditioning {
		return false
	}
	if c.HasWifi && !r.HasWifi {
		return false
	}

	// Every requested equipment id must be present, not merely some.
	for _, equipmentID := range c.EquipmentIDs {
		if !r.HasEquipment(equipmentID) {
			return false
		}
	}

	return true
}

// Evaluate filters rooms against the criteria, preserving input order. The
// input slice is never mutated; an empty criteria returns a copy of the full
// set.
func Evaluate(rooms []Room, c FilterCriteria, resolveTypeName TypeNameResolver) []Room {
	matched := make([]Room, 0, len(rooms))
	for _, r := range rooms {
		if c.Matches(r, resolveTypeName) {
			matched = append(matched, r)
		}
	}
	return matched
}
