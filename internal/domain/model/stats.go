package model

// DailyStat is one day of the admin dashboard chart.
type DailyStat struct {
	Date    string
	Orders  int64
	Revenue int64
}

// AdminStats aggregates order counters for the back-office dashboard.
// Revenue counts paid orders plus delivered COD orders.
type AdminStats struct {
	TotalOrders     int64
	TotalRevenue    int64
	PendingOrders   int64
	CompletedOrders int64
	Daily           []DailyStat
}
