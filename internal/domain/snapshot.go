package domain

type UserCount struct {
	User  string `json:"user"`
	Count int    `json:"count"`
}

// DashboardSnapshot is the summary handed to the presentation layer.
type DashboardSnapshot struct {
	Monitoring   bool        `json:"monitoring"`
	Path         string      `json:"path"`
	TotalRecords int         `json:"total_records"`
	UniqueUsers  int         `json:"unique_users"`
	UniqueIPs    int         `json:"unique_ips"`
	UniqueURLs   int         `json:"unique_urls"`
	Today        int         `json:"today"`
	TopUsers     []UserCount `json:"top_users"`
	ByHour       [24]int     `json:"by_hour"`
	Latest       []LogRecord `json:"latest"`
	UnreadAlerts int         `json:"unread_alerts"`
}
