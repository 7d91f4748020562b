package domain

// Settings — конфигурация заведения, хранимая на сервере.
// Загружается целиком при старте и сохраняется целиком (batch write).
type Settings struct {
	RestaurantName string  `json:"restaurantName"`
	Address        string  `json:"address"`
	Phone          string  `json:"phone"`
	Currency       string  `json:"currency"`
	TaxRate        float64 `json:"taxRate"`
	Language       string  `json:"language"`
	Theme          string  `json:"theme"`
}
