package models

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCustomer Role = "CUSTOMER"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name     string    `gorm:"type:text;not null"`
	Email    string    `gorm:"type:text;not null;uniqueIndex"`
	Password string    `gorm:"type:text;not null"`
	Role     Role      `gorm:"type:text;not null;default:'CUSTOMER'"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (User) TableName() string { return "users" }

type Category struct {
	ID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Name string    `gorm:"type:text;not null"`
	Slug string    `gorm:"type:text;not null;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (Category) TableName() string { return "categories" }

// PricingModel selects the price formula a product uses.
type PricingModel string

const (
	PricingUnit    PricingModel = "UNIT"
	PricingAreaM2  PricingModel = "AREA_M2"
	PricingLinearM PricingModel = "LINEAR_M"
	PricingQuote   PricingModel = "QUOTE"
)

type DimensionUnit string

const (
	DimensionCM DimensionUnit = "CM"
	DimensionMM DimensionUnit = "MM"
)

type Product struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID  *uuid.UUID `gorm:"type:uuid;index"`
	Name        string     `gorm:"type:text;not null"`
	Slug        string     `gorm:"type:text;not null;uniqueIndex"`
	Description string     `gorm:"type:text"`
	Active      bool       `gorm:"not null;default:true;index"`

	PricingModel  PricingModel  `gorm:"type:text;not null;default:'UNIT'"`
	DimensionUnit DimensionUnit `gorm:"type:text;not null;default:'CM'"`

	// Dimension bounds in DimensionUnit; nil means unbounded.
	MinWidth  *int `gorm:"type:int"`
	MaxWidth  *int `gorm:"type:int"`
	MinHeight *int `gorm:"type:int"`
	MaxHeight *int `gorm:"type:int"`
	Step      *int `gorm:"type:int"`

	MinAreaM2     *float64 `gorm:"type:numeric(10,4)"`
	MinPriceCents *int64

	BaseUnitPriceCents    *int64
	BaseM2PriceCents      *int64
	BaseLinearMPriceCents *int64

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Category     *Category     `gorm:"foreignKey:CategoryID"`
	OptionGroups []OptionGroup `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Stock        *Stock        `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (Product) TableName() string { return "products" }

type OptionGroup struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"type:text;not null"`
	Required  bool      `gorm:"not null;default:false"`
	MinSelect int       `gorm:"type:int;not null;default:0"`
	MaxSelect int       `gorm:"type:int;not null;default:1"`
	SortOrder int       `gorm:"type:int;not null;default:0"`

	Options []Option `gorm:"foreignKey:GroupID;constraint:OnDelete:CASCADE"`
}

func (OptionGroup) TableName() string { return "product_option_groups" }

type ModifierType string

const (
	ModifierFixedCents ModifierType = "FIXED_CENTS"
	ModifierPerM2Cents ModifierType = "PER_M2_CENTS"
	ModifierPercent    ModifierType = "PERCENT"
)

type Option struct {
	ID      uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	GroupID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name    string    `gorm:"type:text;not null"`
	Active  bool      `gorm:"not null;default:true"`

	ModifierType  ModifierType `gorm:"type:text;not null;default:'FIXED_CENTS'"`
	ModifierValue int64        `gorm:"not null;default:0"` // cents or percent points, sign allowed
}

func (Option) TableName() string { return "product_options" }

type Stock struct {
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"type:int;not null;default:0"`

	UpdatedAt time.Time `gorm:"not null;default:now()"`
}

func (Stock) TableName() string { return "stocks" }

type OrderType string

const (
	OrderTypeQuote    OrderType = "QUOTE"
	OrderTypeSale     OrderType = "SALE"
	OrderTypeInternal OrderType = "INTERNAL"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusInProgress OrderStatus = "IN_PROGRESS"
	OrderStatusDone       OrderStatus = "DONE"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "UNPAID"
	PaymentPartial PaymentStatus = "PARTIAL"
	PaymentPaid    PaymentStatus = "PAID"
)

type Order struct {
	ID     uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID   `gorm:"type:uuid;not null;index"`
	Code   string      `gorm:"type:text;not null;uniqueIndex"`
	Type   OrderType   `gorm:"type:text;not null;index"`
	Status OrderStatus `gorm:"type:text;not null;default:'PENDING';index"`

	PaymentStatus PaymentStatus `gorm:"type:text;not null;default:'UNPAID'"`

	SubtotalCents int64 `gorm:"not null;default:0"`
	DiscountCents int64 `gorm:"not null;default:0"`
	ShippingCents int64 `gorm:"not null;default:0"`
	TaxCents      int64 `gorm:"not null;default:0"`
	TotalCents    int64 `gorm:"not null;default:0"`

	Notes         *string `gorm:"type:text"`
	InternalNotes *string `gorm:"type:text"`

	// Set on a SALE created by quote conversion: link back to the QUOTE.
	// UNIQUE enforces at most one conversion per quote.
	SourceQuoteID *uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is a snapshot taken when the order is created.
// Later product or price edits never touch it.
type OrderItem struct {
	ID         uuid.UUID   `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	OrderID    uuid.UUID   `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID   `gorm:"type:uuid;not null;index"`
	Name       string      `gorm:"type:text;not null"`
	PriceCents int64       `gorm:"not null"`
	Quantity   int         `gorm:"type:int;not null"`
	Width      *int        `gorm:"type:int"`
	Height     *int        `gorm:"type:int"`
	OptionIDs  []uuid.UUID `gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
}

func (OrderItem) TableName() string { return "order_items" }

// Sequence backs human-readable order codes, one counter per (key, year).
type Sequence struct {
	ID    uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Key   string    `gorm:"type:text;not null;uniqueIndex:ux_sequences_key_year"`
	Year  int       `gorm:"type:int;not null;uniqueIndex:ux_sequences_key_year"`
	Value int64     `gorm:"not null;default:0"`
}

func (Sequence) TableName() string { return "sequences" }
