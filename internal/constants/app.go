package constants

// Application metadata
const (
	AppName    = "carstock"
	AppVersion = "1.0.0"
)

// API base paths
const (
	APIBasePath = "/api"
	APIVersion  = "v1"
)
