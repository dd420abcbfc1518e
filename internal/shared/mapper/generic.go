// Package mapper holds slice-mapping helpers shared by the persistence mappers.
package mapper

import (
	"fmt"
)

// MapSlicePtrWithID maps a slice of pointers, skipping nil inputs and nil
// outputs. When a mapping fails the error is wrapped with the item's ID so the
// offending row can be found in the database.
func MapSlicePtrWithID[T any, R any, ID any](
	items []*T,
	mapFunc func(*T) (*R, error),
	getID func(*T) ID,
) ([]*R, error) {
	if items == nil {
		return nil, nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		mapped, err := mapFunc(item)
		if err != nil {
			return nil, fmt.Errorf("failed to map item ID %v: %w", getID(item), err)
		}
		if mapped != nil {
			result = append(result, mapped)
		}
	}
	return result, nil
}
