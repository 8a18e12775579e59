package printify

// Product is the raw provider listing shape.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Images      []Image   `json:"images"`
	Variants    []Variant `json:"variants"`
}

// Image is a provider mockup image. One image per product may carry IsDefault.
type Image struct {
	Src       string `json:"src"`
	IsDefault bool   `json:"is_default"`
}

// Variant is a provider SKU. Price is in minor units (cents).
type Variant struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Price       int64  `json:"price"`
	IsAvailable bool   `json:"is_available"`
	IsEnabled   bool   `json:"is_enabled"`
}

type productListResponse struct {
	Data []Product `json:"data"`
}

// DisplayProduct is the normalized shape served to the storefront.
type DisplayProduct struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Price       float64          `json:"price"`
	Category    string           `json:"category"`
	ImageURL    string           `json:"image_url"`
	Images      []string         `json:"images"`
	Sizes       []string         `json:"sizes"`
	Description string           `json:"description"`
	Variants    []DisplayVariant `json:"variants"`
}

// DisplayVariant mirrors a provider variant with the price in major units.
type DisplayVariant struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"is_available"`
}

// OrderAddress is the recipient block sent with fulfillment orders.
type OrderAddress struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Country   string `json:"country"`
	Region    string `json:"region"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Zip       string `json:"zip"`
}

// OrderLineItem references a provider product/variant to produce.
type OrderLineItem struct {
	ProductID string `json:"product_id"`
	VariantID int64  `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// OrderRequest is the fulfillment order payload.
type OrderRequest struct {
	ExternalID               string          `json:"external_id"`
	Label                    string          `json:"label,omitempty"`
	LineItems                []OrderLineItem `json:"line_items"`
	ShippingMethod           int             `json:"shipping_method"`
	SendShippingNotification bool            `json:"send_shipping_notification"`
	AddressTo                OrderAddress    `json:"address_to"`
}

// Order is the provider's view of a submitted fulfillment order.
type Order struct {
	ID         string `json:"id"`
	ExternalID string `json:"external_id,omitempty"`
	Status     string `json:"status,omitempty"`
}

// ShippingQuote carries per-method shipping cost in minor units.
type ShippingQuote struct {
	Standard int64 `json:"standard"`
	Express  int64 `json:"express"`
}
