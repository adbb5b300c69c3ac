package consts

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// AnalyticsPageCap bounds full-list scans inside analytics aggregations.
	AnalyticsPageCap = 1000
)

const (
	InviteBasePath = "https://conexus.app/i/"
)

const (
	INSERT = "INSERT"
	UPDATE = "UPDATE"
	DELETE = "DELETE"
)
