package model

// Category is a server-known spending category. Locally-typed category
// names that have not been created yet carry no ID.
type Category struct {
	ID    string
	Title string
	Color string
	Icon  string
}

// DefaultCategoryColor is used when provisioning a category the user
// typed by hand or accepted from an AI suggestion.
const DefaultCategoryColor = "#6d6ef9"

// SuggestedCategory is one entry from the AI category-suggestion
// endpoint. AISuggested+IsNew entries do not exist server-side yet and
// must be created before they can be referenced.
type SuggestedCategory struct {
	ID          string
	Title       string
	AISuggested bool
	IsNew       bool
}
