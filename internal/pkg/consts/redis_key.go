package consts

const (
	SmsKey                  = "sms:validate:code:"
	SmsCheckTokenKey        = "sms:check:token:"
	NetworkCountKey         = "network:count:"
	NetworkListKey          = "network:list:"
	NetworkMetrics7DaysKey  = "network:metrics:7days:"
	NetworkMetrics30DaysKey = "network:metrics:30days:"
	NetworkDirtyKey         = "network:dirty"
	InviteCountKey          = "invite:count:"
	InviteClickDirtyKey     = "invite:click:dirty"
)

const (
	NetworkMetricDailyLock = "network:metric:lock:"
	InviteMetricDailyLock  = "invite:metric:lock:"
)
