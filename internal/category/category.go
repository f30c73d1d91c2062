package category

// Category is one themed section of the bucket list. Item order is
// significant and is preserved across capture and restore.
type Category struct {
	Title string   `json:"title"`
	Items []string `json:"items"`
}

func New(title string, items ...string) Category {
	return Category{Title: title, Items: items}
}

func (c Category) ItemCount() int {
	return len(c.Items)
}

func (c Category) DeepCopy() Category {
	items := make([]string, len(c.Items))
	copy(items, c.Items)
	return Category{Title: c.Title, Items: items}
}
