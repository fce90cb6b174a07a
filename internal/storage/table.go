package storage

import "fmt"

// ValidateTable rejects table identifiers that cannot be safely
// interpolated into a query. The mart table name comes from environment
// configuration, not user input, but it still ends up inside SQL text.
func ValidateTable(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty table name", ErrInvalidInput)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.':
		default:
			return fmt.Errorf("%w: table name %q contains %q", ErrInvalidInput, name, r)
		}
	}
	return nil
}
