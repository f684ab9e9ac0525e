package storefront

import "time"

// Category is the fixed set of catalog sections a product can belong to.
type Category string

const (
	CategoryCollection Category = "Collection"
	CategorySpotlight  Category = "Spotlight"
)

// Display height hints used by the catalog grid.
const (
	HeightMedium = "medium"
	HeightTall   = "tall"
)

// Specifications holds the technical details shown on a product page.
type Specifications struct {
	Movement        string `json:"movement,omitempty"`
	CaseMaterial    string `json:"caseMaterial,omitempty"`
	CaseDiameter    string `json:"caseDiameter,omitempty"`
	WaterResistance string `json:"waterResistance,omitempty"`
	Warranty        string `json:"warranty,omitempty"`
	PowerReserve    string `json:"powerReserve,omitempty"`
}

// Product is a catalog item as seen by the client.
//
// Records arrive from the document store keyed by DocID ("_id"), while
// everything client-side indexes by ID. NormalizeIdentity resolves the two
// into a single canonical identifier; see identity.go.
type Product struct {
	DocID          string         `json:"_id,omitempty"`
	ID             string         `json:"id,omitempty"`
	Name           string         `json:"name"`
	Price          string         `json:"price"`
	Image          string         `json:"image"`
	Images         []string       `json:"images,omitempty"`
	Category       Category       `json:"category"`
	Description    string         `json:"description"`
	Height         string         `json:"height,omitempty"`
	Specifications Specifications `json:"specifications,omitempty"`
	CreatedAt      time.Time      `json:"createdAt,omitempty"`
	UpdatedAt      time.Time      `json:"updatedAt,omitempty"`
}

// ProductDraft is the payload for creating or updating a product. The
// identifier is always server-assigned and is deliberately absent here.
type ProductDraft struct {
	Name           string         `json:"name"`
	Price          string         `json:"price"`
	Image          string         `json:"image"`
	Images         []string       `json:"images,omitempty"`
	Category       Category       `json:"category"`
	Description    string         `json:"description"`
	Height         string         `json:"height,omitempty"`
	Specifications Specifications `json:"specifications,omitempty"`
}

// Validate checks the fields the remote store requires. The store validates
// again server-side; this catches obvious mistakes before a network call.
func (d ProductDraft) Validate() error {
	if d.Name == "" || d.Price == "" || d.Image == "" || d.Category == "" || d.Description == "" {
		return validationErrorf("missing required fields: name, price, image, category, description")
	}
	return nil
}

// Review is a customer comment tied to a product. Reviews are immutable
// once created; the server assigns the identifier and timestamp.
type Review struct {
	DocID     string    `json:"_id,omitempty"`
	ID        string    `json:"id,omitempty"`
	ProductID string    `json:"productId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// User is the account record returned alongside a bearer token at login.
type User struct {
	DocID string `json:"_id,omitempty"`
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role"`
}
