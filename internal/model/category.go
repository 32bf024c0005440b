package model

// Category represents a product/trend category as stored in the
// `category` table.
//
// Fields:
//  ID   – primary key identifier (category_id), assigned by the store.
//  Name – display name of the category (category_name).
type Category struct {
	ID   int64  `json:"id"`   // category.category_id
	Name string `json:"name"` // category.category_name
}
