package frisbo

// Authorization is the response to a successful login.
type Authorization struct {
	AccessToken string `json:"access_token"`
	IDToken     string `json:"id_token,omitempty"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// User represents a Frisbo user account.
type User struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Status    bool   `json:"status"`
	Roles     string `json:"roles,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	Confirmed int    `json:"confirmed,omitempty"`
}

// Organization represents a merchant organization.
type Organization struct {
	OrganizationID        int    `json:"organization_id"`
	IsActive              bool   `json:"is_active"`
	Name                  string `json:"name"`
	VATRegistrationNumber string `json:"vat_registration_number,omitempty"`
	TradeRegisterNumber   string `json:"trade_register_registration_number,omitempty"`
	Description           string `json:"description,omitempty"`
	ContractStartDate     string `json:"contract_start_date,omitempty"`
	ContractEndDate       string `json:"contract_end_date,omitempty"`
	CreatedAt             string `json:"created_at,omitempty"`
	UpdatedAt             string `json:"updated_at,omitempty"`
}

// Warehouse represents a fulfillment warehouse.
type Warehouse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Channel represents a sales channel.
type Channel struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// ProductDimensions holds product measurements in cm and kg.
type ProductDimensions struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	Length int `json:"length,omitempty"`
	Weight int `json:"weight,omitempty"`
}

// Product represents a sellable product.
type Product struct {
	ID              int                `json:"id,omitempty"`
	Name            string             `json:"name"`
	SKU             string             `json:"sku"`
	UPC             string             `json:"upc,omitempty"`
	EAN             string             `json:"ean,omitempty"`
	ExternalCode    string             `json:"external_code,omitempty"`
	VAT             int                `json:"vat"`
	Dimensions      *ProductDimensions `json:"dimensions,omitempty"`
	HasSerialNumber bool               `json:"has_serial_number,omitempty"`
}

// Address is a shipping or billing address.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	County  string `json:"county,omitempty"`
	Country string `json:"country"`
	Zip     string `json:"zip"`
}

// Customer identifies the person an order ships to.
type Customer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
}

// OrderProduct is one line item on an order. Price, VAT and discount are
// decimal strings on the wire.
type OrderProduct struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	Quantity     int    `json:"quantity"`
	VAT          string `json:"vat"`
	Discount     string `json:"discount,omitempty"`
	ProductID    int    `json:"product_id,omitempty"`
	OrderID      int    `json:"order_id,omitempty"`
	Total        string `json:"total,omitempty"`
	Status       string `json:"status,omitempty"`
	IsVirtual    bool   `json:"is_virtual,omitempty"`
	PriceWithVAT string `json:"price_with_vat,omitempty"`
}

// InvoiceSeries describes an invoice numbering series.
type InvoiceSeries struct {
	Series string `json:"series"`
	Number int    `json:"number"`
}

// Order fulfillment statuses reported by the API. The full set is larger;
// these cover the lifecycle transitions the SDK acts on.
const (
	StatusProcessing         = "Processing"
	StatusPendingFulfillment = "Pending fulfillment"
	StatusReadyForPicking    = "Ready for picking"
	StatusInPicking          = "In picking"
	StatusWaitingForCourier  = "Waiting for courier"
	StatusInTransit          = "In transit"
	StatusOutForDelivery     = "Out for delivery"
	StatusDelivered          = "Delivered"
	StatusRefused            = "Refused"
	StatusCanceled           = "Canceled"
	StatusReturned           = "Returned"
	StatusArchived           = "Archived"
)

// Inbound inventory request statuses.
const (
	InboundStatusNew             = "New"
	InboundStatusDeclined        = "Declined"
	InboundStatusPendingApproval = "Pending approval"
	InboundStatusSendingToWMS    = "Sending to WMS"
	InboundStatusInProgress      = "In progress"
	InboundStatusCompleted       = "Completed"
	InboundStatusConfirmed       = "Confirmed"
)
