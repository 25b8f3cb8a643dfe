package domain

// Image count bounds enforced on every product write.
const (
	MinProductImages = 1
	MaxProductImages = 5
)

// Category is a product category as served by the catalog backend.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ArModel holds the AR presentation parameters attached to a product.
type ArModel struct {
	ID          int64   `json:"id"`
	GlbURL      string  `json:"glbUrl"`
	ScaleX      float64 `json:"scaleX"`
	ScaleY      float64 `json:"scaleY"`
	ScaleZ      float64 `json:"scaleZ"`
	RotationY   float64 `json:"rotationY"`
	IsArEnabled bool    `json:"isArEnabled"`
}

// Product mirrors the catalog backend's product representation. Field names
// follow the upstream JSON contract.
type Product struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	OldPrice    float64  `json:"oldPrice"`
	SaleRate    float64  `json:"saleRate"`
	Quantity    int      `json:"quantity"`
	Description string   `json:"description"`
	ImageURL    []string `json:"imageUrl"`
	ArModel     *ArModel `json:"arModel"`
	ModelURL    string   `json:"modelUrl,omitempty"`
	Category    Category `json:"category"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt,omitempty"`
	CreatedBy   string   `json:"createdBy"`
	UpdatedBy   string   `json:"updatedBy,omitempty"`
}

// CurrentModelURL returns the product's 3D model URL. The AR-model record is
// authoritative when present; the flat modelUrl field is a legacy fallback
// some upstream responses still carry.
func (p *Product) CurrentModelURL() string {
	if p.ArModel != nil && p.ArModel.GlbURL != "" {
		return p.ArModel.GlbURL
	}
	return p.ModelURL
}
