package domain

// SupportDocument is a user-attached reference text. When Selected, its
// content is included in the context of every AI request.
type SupportDocument struct {
	// Name is the unique key for the document.
	Name     string
	Content  string
	Selected bool
}

// SelectedDocuments filters docs down to those marked for AI context,
// preserving order.
func SelectedDocuments(docs []SupportDocument) []SupportDocument {
	var out []SupportDocument
	for _, d := range docs {
		if d.Selected {
			out = append(out, d)
		}
	}
	return out
}
