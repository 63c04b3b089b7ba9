package constants

// Static route constants
const (
	PublicRoute    = "/"
	DashboardRoute = "/dashboard"
	AdminRoute     = "/admin"
	LoginRoute     = "/login"
)
