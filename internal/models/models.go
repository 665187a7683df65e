package models

import (
	"time"
)

// Currency symbol used in human-readable amounts (receipts, audit details).
const Currency = "৳"

// User roles
const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// ReservedAdminUsername is the bootstrap administrator account.
// It can never be deleted, regardless of who asks.
const ReservedAdminUsername = "Admin"

// UserPermissions controls what the console offers a user. The server
// enforces the same rules on every mutating route.
type UserPermissions struct {
	CanAddInventory bool     `json:"canAddInventory"`
	AccessiblePages []string `json:"accessiblePages"`
}

// User - a staff or admin account. The store serializes this struct, so
// the hash must survive marshaling; handlers strip it with Redacted
// before writing a user to a response.
type User struct {
	ID           string          `json:"id"`
	Username     string          `json:"username"`
	PasswordHash string          `json:"passwordHash,omitempty"`
	Role         string          `json:"role"` // 'ADMIN' or 'STAFF'
	FullName     string          `json:"fullName"`
	Permissions  UserPermissions `json:"permissions"`
}

// Redacted returns a copy with the password hash cleared, safe to put
// in an HTTP response.
func (u User) Redacted() User {
	u.PasswordHash = ""
	return u
}

// ProductTypes lists the categories the shop sells.
var ProductTypes = []string{"Frame", "Lens", "Sunglasses", "Contact Lens", "Accessory"}

// Product - one inventory ledger entry
type Product struct {
	ID            string    `json:"id"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Type          string    `json:"type"`
	Material      string    `json:"material"`
	Color         string    `json:"color"`
	CostPrice     float64   `json:"costPrice"`
	SellingPrice  float64   `json:"sellingPrice"`
	StockQuantity int       `json:"stockQuantity"`
	MinStockLevel int       `json:"minStockLevel"`
	Description   string    `json:"description"`
	LastUpdated   time.Time `json:"lastUpdated"`
	ImageURL      string    `json:"imageUrl,omitempty"`
}

// LowStock reports whether the product is at or below its reorder level.
// Low stock flags the dashboard; it does not block sales.
func (p Product) LowStock() bool {
	return p.StockQuantity <= p.MinStockLevel
}

// Sale - an immutable transaction record. ProductName, ProductType and
// SalespersonName are snapshots taken at sale time so the record stays
// meaningful if the product or user is later edited or removed.
type Sale struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"productId"`
	ProductName     string    `json:"productName"`
	ProductType     string    `json:"productType"`
	Quantity        int       `json:"quantity"`
	TotalAmount     float64   `json:"totalAmount"` // unit price at sale time * quantity, never recomputed
	CustomerName    string    `json:"customerName"`
	CustomerContact string    `json:"customerContact"`
	Date            time.Time `json:"date"`
	SalespersonID   string    `json:"salespersonId"`
	SalespersonName string    `json:"salespersonName"`
}

// Audit action kinds
const (
	AuditCreate = "CREATE"
	AuditUpdate = "UPDATE"
	AuditDelete = "DELETE"
	AuditSystem = "SYSTEM"
)

// Audit entity kinds
const (
	EntityProduct = "PRODUCT"
	EntitySale    = "SALE"
	EntityUser    = "USER"
	EntityConfig  = "CONFIG"
	EntitySystem  = "SYSTEM"
)

// AuditLog - one immutable trace entry per mutating action
type AuditLog struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	Details   string    `json:"details"`
}

// AppConfig - singleton feature toggles
type AppConfig struct {
	EnableProductImages  bool `json:"enableProductImages"`
	EnableGeminiInsights bool `json:"enableGeminiInsights"`
}

// DefaultConfig is written on first read if the config blob is absent.
func DefaultConfig() AppConfig {
	return AppConfig{EnableProductImages: true, EnableGeminiInsights: true}
}
