package repotypes

// AllValues in an equality filter means "no filter", as the dashboard combo
// boxes send it.
const AllValues = "TODOS"

const DefaultLogLimit = 1000

// LogFilter narrows QueryRecords. Date, Level and Status match exactly; User,
// IP and URL match as case-insensitive substrings.
type LogFilter struct {
	Date   string `query:"date"`
	Level  string `query:"level"`
	Status string `query:"status"`
	User   string `query:"user"`
	IP     string `query:"ip"`
	URL    string `query:"url"`
	Limit  int    `query:"limit"`
}
