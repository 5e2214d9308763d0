package dto

type SeedCatalogResponse struct {
	SeriesCreated   int `json:"seriesCreated"`
	SeriesReused    int `json:"seriesReused"`
	ProductsCreated int `json:"productsCreated"`
	ProductsSkipped int `json:"productsSkipped"`
}

type SeedAdminResponse struct {
	Email   string `json:"email"`
	Created bool   `json:"created"`
}
