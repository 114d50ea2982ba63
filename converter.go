package tourcopy

// Converter converts editor markup to Markdown.
type Converter interface {
	// Convert transforms markup into Markdown. Partial markup, such as a
	// collapsed section cut inside a tag, is converted on a best-effort basis.
	Convert(markup string) (string, error)
}
