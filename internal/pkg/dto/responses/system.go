package responses

type SecurityStatus struct {
	Encryption     string `json:"encryption"`
	Authentication string `json:"authentication"`
	Database       string `json:"database"`
	HTTPS          string `json:"https"`
	LastScan       string `json:"lastScan"`
}

type DatabaseMetrics struct {
	Patients int64 `json:"patients"`
	Users    int64 `json:"users"`
}

type ServerMetrics struct {
	UptimeSeconds  float64 `json:"uptime"`
	AllocatedBytes uint64  `json:"allocatedBytes"`
	Goroutines     int     `json:"goroutines"`
}

type PerformanceMetrics struct {
	Database    DatabaseMetrics `json:"database"`
	Server      ServerMetrics   `json:"server"`
	LastUpdated string          `json:"lastUpdated"`
}
