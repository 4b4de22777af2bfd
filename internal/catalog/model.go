package catalog

// Material is a catalog product line. Catalog data is read-only at runtime;
// restocking happens out of band.
type Material struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Image       string  `json:"image"`
	GroupID     string  `json:"group_id"`

	Specifications map[string]string `json:"specifications,omitempty"`
	PDFRef         *string           `json:"pdf_ref,omitempty"`
}

type MaterialGroup struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ListOptions struct {
	GroupID string
	Search  string
}
