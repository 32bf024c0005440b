package model

// Product represents a row in the `product` table.  CategoryID and
// DesignerID reference category/designer rows but are nullable and
// not checked by the application.
type Product struct {
	ID          int64  `json:"id"`                    // product.product_id
	Name        string `json:"name"`                  // product.product_name
	CategoryID  *int64 `json:"category_id,omitempty"` // product.category_id (nullable)
	DesignerID  *int64 `json:"designer_id,omitempty"` // product.designer_id (nullable)
	Description string `json:"description"`           // product.product_description
}
