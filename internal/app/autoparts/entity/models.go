package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Manufacturer представляет производителя запчастей
// Записи создаются по требованию и никогда не изменяются
type Manufacturer struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"size:200;not null;uniqueIndex" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (Manufacturer) TableName() string {
	return "manufacturers"
}

// Product представляет товар в каталоге
// Цена хранится как точное десятичное значение, без двоичной плавающей точки
type Product struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string          `gorm:"size:200;not null" json:"name"`
	Price          decimal.Decimal `gorm:"type:decimal(10,2);not null;check:price >= 0" json:"price"`
	Description    string          `gorm:"size:2000" json:"description"`
	ImagePath      string          `gorm:"size:500" json:"image_path"` // Непрозрачная ссылка, файлами владеет внешнее хранилище
	ManufacturerID *int64          `json:"manufacturer_id"`
	Manufacturer   *Manufacturer   `gorm:"foreignKey:ManufacturerID" json:"-"`
	IsActive       bool            `gorm:"not null;default:true" json:"is_active"`
	CreatedAt      time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}

// ProductRelation представляет направленную связь "сопутствующий товар"
// Пара (main, related) уникальна, связь товара с самим собой запрещена схемой
type ProductRelation struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	MainProductID    int64     `gorm:"not null;uniqueIndex:idx_relation_pair;check:chk_no_self_relation,main_product_id <> related_product_id" json:"main_product_id"`
	RelatedProductID int64     `gorm:"not null;uniqueIndex:idx_relation_pair" json:"related_product_id"`
	MainProduct      *Product  `gorm:"foreignKey:MainProductID" json:"-"`
	RelatedProduct   *Product  `gorm:"foreignKey:RelatedProductID" json:"-"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ProductRelation) TableName() string {
	return "product_relations"
}

// SalesRecord представляет запись о продаже (журнал только на добавление)
// TotalAmount фиксируется в момент продажи и не пересчитывается
// при последующих изменениях цены товара
// Журнал переживает удаление товара: ссылка обнуляется, запись остается
type SalesRecord struct {
	ID           int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    *int64          `gorm:"index" json:"product_id"`
	Product      *Product        `gorm:"foreignKey:ProductID;constraint:OnDelete:SET NULL" json:"-"`
	Quantity     int             `gorm:"not null;check:quantity > 0" json:"quantity"`
	SaleDate     time.Time       `gorm:"not null" json:"sale_date"`
	TotalAmount  decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"total_amount"`
	CustomerInfo string          `gorm:"size:500" json:"customer_info"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (SalesRecord) TableName() string {
	return "sales_history"
}

// ProductView содержит товар с производителем и числом исходящих связей
// Вычисляемые поля заполняются запросом, в таблице не хранятся
type ProductView struct {
	Product              `gorm:"embedded"`
	ManufacturerName     string `json:"manufacturer_name"`
	RelatedProductsCount int64  `json:"related_products_count"`
}

// RelatedProduct содержит связь, развернутую до целевого товара
type RelatedProduct struct {
	RelationID       int64           `json:"relation_id"`
	MainProductID    int64           `json:"main_product_id"`
	RelatedProductID int64           `json:"related_product_id"`
	CreatedAt        time.Time       `json:"created_at"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	ImagePath        string          `json:"image_path"`
	IsActive         bool            `json:"is_active"`
}

// SaleView содержит запись о продаже с названием товара
type SaleView struct {
	SalesRecord `gorm:"embedded"`
	ProductName string `json:"product_name"`
}

// SalesStatistics - агрегаты по произвольному набору продаж
type SalesStatistics struct {
	TotalQuantity int64           `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	AverageSale   decimal.Decimal `json:"average_sale"`
}

// ProductFilter описывает фильтрацию и сортировку списка товаров
// Сортировка по цене поддерживает оба направления, по умолчанию - по имени
type ProductFilter struct {
	ManufacturerID *int64
	SortBy         string // "" | "price"
	SortOrder      string // "asc" | "desc"
}
