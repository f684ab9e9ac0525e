package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductCategory string

const (
	CategoryCollection ProductCategory = "Collection"
	CategorySpotlight  ProductCategory = "Spotlight"
)

type ProductHeight string

const (
	HeightMedium ProductHeight = "medium"
	HeightTall   ProductHeight = "tall"
)

// StringArray stores a []string as a JSON text column so the same model
// works on postgres and the sqlite test database.
type StringArray []string

func (a StringArray) Value() (driver.Value, error) {
	if a == nil {
		return "[]", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (a *StringArray) Scan(value interface{}) error {
	if value == nil {
		*a = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringArray: %T", value)
	}
	return json.Unmarshal(data, a)
}

// Specifications are the technical details shown on a product page, stored
// as embedded columns.
type Specifications struct {
	Movement        string `json:"movement,omitempty"`
	CaseMaterial    string `json:"caseMaterial,omitempty"`
	CaseDiameter    string `json:"caseDiameter,omitempty"`
	WaterResistance string `json:"waterResistance,omitempty"`
	Warranty        string `json:"warranty,omitempty"`
	PowerReserve    string `json:"powerReserve,omitempty"`
}

// Product is a catalog item. The primary key is a server-assigned UUID
// surfaced to clients as "_id", matching the document-store contract the
// storefront expects. Price is a display string, not a number: "$26,800".
type Product struct {
	ID             string          `gorm:"primarykey;size:36" json:"_id"`
	Name           string          `gorm:"not null" json:"name"`
	Price          string          `gorm:"not null" json:"price"`
	Image          string          `gorm:"not null" json:"image"`
	Images         StringArray     `gorm:"type:text" json:"images"`
	Category       ProductCategory `gorm:"type:varchar(20);default:'Collection'" json:"category"`
	Description    string          `gorm:"type:text;not null" json:"description"`
	Height         ProductHeight   `gorm:"type:varchar(10);default:'medium'" json:"height"`
	Specifications Specifications  `gorm:"embedded;embeddedPrefix:spec_" json:"specifications"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Reviews []Review `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
