package api

import "Conexus/internal/api/handler"

// HandlersGroup bundles every initialized handler for route registration.
type HandlersGroup struct {
	UserHandler          *handler.UserHandler
	NetworkHandler       *handler.NetworkHandler
	InviteHandler        *handler.InviteHandler
	AnalyticsHandler     *handler.AnalyticsHandler
	NetworkMetricHandler *handler.NetworkMetricHandler
}
