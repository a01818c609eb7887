package config

import (
	"errors"
	"fmt"
	"math"
)

// Validate checks a whole config file and returns all problems found,
// joined into one error.
func (f *File) Validate() error {
	var errs []error

	if len(f.Menus) == 0 {
		errs = append(errs, errors.New("no menus defined"))
	}

	seen := make(map[string]bool)
	for i, m := range f.Menus {
		if m.ID == "" {
			errs = append(errs, fmt.Errorf("menu %d: missing id", i))
			continue
		}
		if seen[m.ID] {
			errs = append(errs, fmt.Errorf("menu %q: duplicate id", m.ID))
		}
		seen[m.ID] = true
		if m.Hotkey != "" {
			if seen[m.Hotkey] {
				errs = append(errs, fmt.Errorf("menu %q: hotkey %q already taken", m.ID, m.Hotkey))
			}
			seen[m.Hotkey] = true
		}

		if len(m.Items) == 0 {
			errs = append(errs, fmt.Errorf("menu %q: no items", m.ID))
		}
		errs = append(errs, validateItems(m.ID, m.Items)...)
	}

	return errors.Join(errs...)
}

func validateItems(path string, items []Item) []error {
	var errs []error
	for i, it := range items {
		where := fmt.Sprintf("%s, item %d", path, i)
		if it.Label == "" {
			errs = append(errs, fmt.Errorf("%s: missing label", where))
		} else {
			where = path + "/" + it.Label
		}

		if it.Angle != nil {
			a := *it.Angle
			if math.IsNaN(a) || math.IsInf(a, 0) {
				errs = append(errs, fmt.Errorf("%s: angle is not a finite number", where))
			} else if a < 0 || a >= 360 {
				errs = append(errs, fmt.Errorf("%s: angle %v outside [0, 360)", where, a))
			}
		}

		set := 0
		if it.Exec != "" {
			set++
		}
		if it.URI != "" {
			set++
		}
		if it.Print != "" {
			set++
		}
		if len(it.Items) > 0 {
			set++
		}
		switch {
		case set == 0:
			errs = append(errs, fmt.Errorf("%s: needs one of exec, uri, print or items", where))
		case set > 1:
			errs = append(errs, fmt.Errorf("%s: more than one of exec, uri, print and items", where))
		}

		errs = append(errs, validateItems(where, it.Items)...)
	}
	return errs
}
