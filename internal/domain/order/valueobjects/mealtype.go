package valueobjects

import "fmt"

// MealType identifies a meal slot in the day.
type MealType string

const (
	MealLunch  MealType = "LUNCH"
	MealDinner MealType = "DINNER"
)

func (m MealType) String() string { return string(m) }

// IsValid reports whether m is a known meal type.
func (m MealType) IsValid() bool {
	return m == MealLunch || m == MealDinner
}

// DefaultMealTypes maps a meal count to the conventional slots when the
// client did not pick them explicitly: one meal is lunch, two is lunch and
// dinner.
func DefaultMealTypes(mealsPerDay int) ([]MealType, error) {
	switch mealsPerDay {
	case 1:
		return []MealType{MealLunch}, nil
	case 2:
		return []MealType{MealLunch, MealDinner}, nil
	default:
		return nil, fmt.Errorf("unsupported meals per day: %d", mealsPerDay)
	}
}

// ParseMealTypes validates a client-supplied meal type list, rejecting
// unknown slots and duplicates.
func ParseMealTypes(raw []string) ([]MealType, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("meal types cannot be empty")
	}
	seen := make(map[MealType]bool, len(raw))
	types := make([]MealType, 0, len(raw))
	for _, r := range raw {
		mt := MealType(r)
		if !mt.IsValid() {
			return nil, fmt.Errorf("unknown meal type: %s", r)
		}
		if seen[mt] {
			return nil, fmt.Errorf("duplicate meal type: %s", r)
		}
		seen[mt] = true
		types = append(types, mt)
	}
	return types, nil
}
