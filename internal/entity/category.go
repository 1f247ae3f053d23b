package entity

// Category is a row of the categories table.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name" validate:"required,max=50"`
}

// BookCategory links a book to a category. It has no lifecycle of its own:
// rows are removed together with either parent.
type BookCategory struct {
	BookID     int `json:"book_id" validate:"required,gt=0"`
	CategoryID int `json:"category_id" validate:"required,gt=0"`
}
