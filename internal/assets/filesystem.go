package assets

import (
	"fmt"
	"os"
	"path/filepath"
)

// FilesystemLoader loads assets from a user-provided directory with the
// layout styles/NAME.css and templates/NAME.html. Names missing on disk
// fall back to the embedded assets, so a custom directory only needs to
// carry the files it overrides.
type FilesystemLoader struct {
	basePath string
	fallback *EmbeddedLoader
}

// NewFilesystemLoader creates a loader rooted at basePath.
// Returns ErrInvalidBasePath if basePath is not an existing directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	info, err := os.Stat(basePath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBasePath, basePath)
	}
	return &FilesystemLoader{
		basePath: basePath,
		fallback: NewEmbeddedLoader(),
	}, nil
}

// LoadStyle loads a CSS style from the base directory, falling back to
// the embedded style of the same name.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, "styles", name+".css")
	content, err := os.ReadFile(path) // #nosec G304 -- name is validated, base path is user-chosen
	if err != nil {
		return f.fallback.LoadStyle(name)
	}
	return string(content), nil
}

// LoadTemplate loads an HTML template from the base directory, falling
// back to the embedded template of the same name.
func (f *FilesystemLoader) LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	path := filepath.Join(f.basePath, "templates", name+".html")
	content, err := os.ReadFile(path) // #nosec G304 -- name is validated, base path is user-chosen
	if err != nil {
		return f.fallback.LoadTemplate(name)
	}
	return string(content), nil
}

// Compile-time interface check.
var _ AssetLoader = (*FilesystemLoader)(nil)
