package assets

import (
	"fmt"
	"strings"
)

// ValidateAssetName rejects names that could escape the asset directory:
// empty names, path separators, traversal sequences and null bytes.
func ValidateAssetName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidAssetName)
	}
	if strings.ContainsAny(name, "/\\\x00") {
		return fmt.Errorf("%w: %q contains path separator", ErrInvalidAssetName, name)
	}
	if strings.Contains(name, "..") {
		return fmt.Errorf("%w: %q contains traversal sequence", ErrInvalidAssetName, name)
	}
	return nil
}
