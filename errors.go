package md2site

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilSiblingLinks = errors.New("sibling links are required for homepage rendering")
	ErrInvalidMathMode = errors.New("invalid math mode")
	ErrTemplateRender  = errors.New("page template rendering failed")

	// PDF export errors.
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
)
