package layout

// AssignAnglesForDrag computes the angles the items would have if one more
// item were inserted at dropIndex, without the caller having to mutate its
// item list. A placeholder without a fixed angle is inserted into a private
// copy, angles are assigned, and the placeholder's angle is returned
// separately as dropAngle.
//
// A negative dropIndex means "no placeholder": the result then equals
// AssignAngles and dropAngle is nil. A dropIndex beyond the end of the list
// inserts the placeholder after the last item.
func AssignAnglesForDrag(items []Item, parentAngle *float64, dropIndex int) ([]float64, *float64, error) {
	if dropIndex < 0 {
		angles, err := AssignAngles(items, parentAngle)
		return angles, nil, err
	}
	if dropIndex > len(items) {
		dropIndex = len(items)
	}

	augmented := make([]Item, 0, len(items)+1)
	augmented = append(augmented, items[:dropIndex]...)
	augmented = append(augmented, Item{})
	augmented = append(augmented, items[dropIndex:]...)

	angles, err := AssignAngles(augmented, parentAngle)
	if err != nil {
		return nil, nil, err
	}

	dropAngle := angles[dropIndex]
	angles = append(angles[:dropIndex], angles[dropIndex+1:]...)
	return angles, &dropAngle, nil
}
