package storage

import (
	"fmt"
	"math/rand"
	"time"

	"autoparts/internal/app/autoparts/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type seedProduct struct {
	name         string
	price        string
	description  string
	manufacturer int // индекс в списке производителей
}

var seedManufacturers = []string{
	"Toyota", "Honda", "Ford", "BMW", "Mercedes",
	"Audi", "Volkswagen", "Nissan", "Hyundai", "Kia",
}

var seedProducts = []seedProduct{
	{"Масло моторное 5W-30", "2500.00", "Синтетическое моторное масло", 0},
	{"Воздушный фильтр", "1200.00", "Воздушный фильтр салона", 0},
	{"Тормозные колодки", "4500.00", "Передние тормозные колодки", 1},
	{"Аккумулятор 60Ah", "8500.00", "Свинцово-кислотный аккумулятор", 2},
	{"Свечи зажигания", "1800.00", "Иридиевые свечи зажигания", 0},
	{"Шины 205/55 R16", "12000.00", "Летние шины", 3},
	{"Амортизаторы", "7500.00", "Передние амортизаторы", 1},
	{"Ремень ГРМ", "3200.00", "Ремень газораспределительного механизма", 0},
	{"Тормозная жидкость", "800.00", "DOT 4 тормозная жидкость", 2},
	{"Охлаждающая жидкость", "1500.00", "Антифриз -40°C", 0},
}

// Пары (главный, сопутствующий) по индексам в списке товаров
var seedRelations = [][2]int{
	{0, 1}, {0, 4}, {0, 9}, {2, 8}, {2, 3}, {5, 6}, {5, 2}, {7, 0}, {7, 4},
}

// Seed наполняет пустую базу демонстрационными данными
// Проверка по числу строк: повторный запуск на непустой базе ничего не меняет
// Все вставки выполняются в одной транзакции
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var productCount int64
		if err := tx.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
			return err
		}
		if productCount > 0 {
			return nil
		}

		manufacturers := make([]entity.Manufacturer, len(seedManufacturers))
		for i, name := range seedManufacturers {
			manufacturers[i] = entity.Manufacturer{Name: name}
			if err := tx.Where("name = ?", name).
				FirstOrCreate(&manufacturers[i]).Error; err != nil {
				return err
			}
		}

		products := make([]entity.Product, len(seedProducts))
		for i, sp := range seedProducts {
			price, err := decimal.NewFromString(sp.price)
			if err != nil {
				return err
			}
			products[i] = entity.Product{
				Name:           sp.name,
				Price:          price,
				Description:    sp.description,
				ManufacturerID: &manufacturers[sp.manufacturer].ID,
				IsActive:       true,
			}
			if err := tx.Create(&products[i]).Error; err != nil {
				return err
			}
		}

		for _, pair := range seedRelations {
			relation := entity.ProductRelation{
				MainProductID:    products[pair[0]].ID,
				RelatedProductID: products[pair[1]].ID,
			}
			if err := tx.Create(&relation).Error; err != nil {
				return err
			}
		}

		var salesCount int64
		if err := tx.Model(&entity.SalesRecord{}).Count(&salesCount).Error; err != nil {
			return err
		}
		if salesCount > 0 {
			return nil
		}

		// Фиксированный seed: повторная инициализация чистой базы
		// дает тот же демонстрационный журнал продаж
		rng := rand.New(rand.NewSource(1))
		now := time.Now()
		for i := 0; i < 50; i++ {
			product := products[rng.Intn(len(products))]
			quantity := rng.Intn(5) + 1
			record := entity.SalesRecord{
				ProductID:    &product.ID,
				Quantity:     quantity,
				SaleDate:     now.AddDate(0, 0, -rng.Intn(366)),
				TotalAmount:  product.Price.Mul(decimal.NewFromInt(int64(quantity))),
				CustomerInfo: fmt.Sprintf("Клиент %d", i+1),
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
		}

		return nil
	})
}
