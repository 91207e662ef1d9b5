package social

// Content is the payload handed to adapters. It is immutable once built and compares by value.
type Content struct {
	title       string
	description string
}

// NewContent builds a Content. No validation is applied.
func NewContent(title, description string) Content {
	return Content{title: title, description: description}
}

// Title returns the content title.
func (c Content) Title() string { return c.title }

// Description returns the content description.
func (c Content) Description() string { return c.description }
