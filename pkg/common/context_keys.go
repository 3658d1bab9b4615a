package common

type contextKey string

const (
	RequestIDKey     contextKey = "request_id"
	CategoryKey      contextKey = "auth_category"
	ClientAddressKey contextKey = "client_address"
	AdminSubjectKey  contextKey = "admin_subject"
)
