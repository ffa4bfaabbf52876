package v1alpha1

import "fmt"

// errSize reports a fixed-size SSZ decode whose input buffer was the
// wrong length for typeName.
func errSize(typeName string, want, got int) error {
	return fmt.Errorf("%s: invalid SSZ buffer size, expected %d, got %d", typeName, want, got)
}
