package dashpage

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown, e.g. for rendering a
	// generated page as a chat-side preview.
	Convert(html string) (string, error)
}
