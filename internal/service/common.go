package service

import "fmt"

type namedInt struct {
	name  string
	value int
}

// requireNonNegative reports the first negative value by name.
func requireNonNegative(values ...namedInt) error {
	for _, v := range values {
		if v.value < 0 {
			return fmt.Errorf("%s must be >= 0", v.name)
		}
	}
	return nil
}
