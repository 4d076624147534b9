package widget

type renderSource int

const (
	renderPending renderSource = iota
	renderPrimary
	renderPlaceholder
	renderError
	renderFallback
)

func (s renderSource) String() string {
	switch s {
	case renderPrimary:
		return "primary"
	case renderPlaceholder:
		return "placeholder"
	case renderError:
		return "error"
	case renderFallback:
		return "fallback"
	}
	return "pending"
}

// selectSource picks what to render. Priority: decoded primary, then
// the error model for a failed primary, then placeholder, then
// fallback, then the pending indicator. A primary that is still loading
// and one that failed with no error model both fall through to the
// placeholder chain.
func selectSource(primaryReady bool, primaryFailed bool, hasPlaceholder bool, hasError bool, hasFallback bool) renderSource {
	if primaryReady {
		return renderPrimary
	}
	if primaryFailed && hasError {
		return renderError
	}
	if hasPlaceholder {
		return renderPlaceholder
	}
	if hasFallback {
		return renderFallback
	}
	return renderPending
}
