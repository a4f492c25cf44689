package repository

import "time"

type Transaction struct {
	TxHash            string `gorm:"size:66;uniqueIndex;not null"` // 0x + 64 hex chars
	Type              string `gorm:"size:20;not null;index"`
	Status            string `gorm:"size:12;not null;index"`
	From              string `gorm:"column:from_wallet;size:42;not null;index"`
	To                string `gorm:"column:to_wallet;size:42"`
	Amount            string `gorm:"size:100"` // wei amounts kept as decimal strings
	Fee               string `gorm:"size:100"`
	PaymentToken      string `gorm:"size:42"`
	ProductID         string `gorm:"size:36"`
	ContentID         string `gorm:"size:36"`
	ContractProductID int64
	OrderID           string `gorm:"size:36"` // set once a purchase is processed
	TipID             string `gorm:"size:36"` // set once a tip is processed
	BlockNumber       uint64
	BlockHash         string `gorm:"size:66"`
	GasUsed           string `gorm:"size:100"`
	Error             string `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	ConfirmedAt       *time.Time
	ProcessedAt       *time.Time
}

type Order struct {
	ID              string `gorm:"primaryKey;autoIncrement:false"`
	ProductID       string `gorm:"size:36;index"`
	Buyer           string `gorm:"size:42;not null;index"`
	Seller          string `gorm:"size:42;not null;index"`
	Amount          string `gorm:"size:100;not null"`
	Fee             string `gorm:"size:100;not null"`
	PaymentToken    string `gorm:"size:42"`
	Status          string `gorm:"size:12;not null;index"`
	DeliveryType    string `gorm:"size:10;not null"`
	ShippingAddress string `gorm:"type:text"`
	TrackingInfo    string `gorm:"type:text"`
	TxHash          string `gorm:"size:66;uniqueIndex;not null"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Tip struct {
	ID           string `gorm:"primaryKey;autoIncrement:false"`
	ContentID    string `gorm:"size:36;index"`
	From         string `gorm:"column:from_wallet;size:42;not null;index"`
	To           string `gorm:"column:to_wallet;size:42;not null;index"`
	Amount       string `gorm:"size:100;not null"`
	PaymentToken string `gorm:"size:42"`
	TxHash       string `gorm:"size:66;uniqueIndex;not null"`
	CreatedAt    time.Time
}

type User struct {
	ID                  string `gorm:"primaryKey;autoIncrement:false"`
	Wallet              string `gorm:"size:42;uniqueIndex;not null"`
	UserType            int    `gorm:"not null;default:0"`
	DisplayName         string `gorm:"size:255"`
	IsActive            bool   `gorm:"not null;default:true"`
	IsOnChain           bool   `gorm:"not null;default:false"`
	OnChainRegisteredAt *time.Time
	TotalSalesCount     int `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type Product struct {
	ID              string `gorm:"primaryKey;autoIncrement:false"`
	ContractID      int64  `gorm:"index"`
	Seller          string `gorm:"size:42;not null;index"`
	Title           string `gorm:"size:255;not null"`
	Price           string `gorm:"size:100;not null"`
	PaymentToken    string `gorm:"size:42"`
	Stock           int    `gorm:"not null;default:0"`
	IsActive        bool   `gorm:"not null;default:true"`
	IsOnChain       bool   `gorm:"not null;default:false"`
	OnChainLinkedAt *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Content struct {
	ID        string `gorm:"primaryKey;autoIncrement:false"`
	Creator   string `gorm:"size:42;not null;index"`
	Platform  string `gorm:"size:20"`
	URL       string `gorm:"type:text"`
	Title     string `gorm:"size:255"`
	TipsCount int    `gorm:"not null;default:0"`
	LastTipAt *time.Time
	CreatedAt time.Time
}
