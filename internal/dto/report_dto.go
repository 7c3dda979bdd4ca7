package dto

// StockSummaryResponse aggregates the catalog for the reports page.
type StockSummaryResponse struct {
	TotalProducts  int `json:"total_products"`
	ActiveProducts int `json:"active_products"`
	TotalStock     int `json:"total_stock"`
	NewStock       int `json:"new_stock"`
	UsedStock      int `json:"used_stock"`
	DamagedStock   int `json:"damaged_stock"`
	LowStockCount  int `json:"low_stock_count"`
	OutOfStock     int `json:"out_of_stock"`
	MovementsIn    int `json:"movements_in"`
	MovementsOut   int `json:"movements_out"`
	AlertCount     int `json:"alert_count"`
}
