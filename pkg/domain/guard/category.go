package guard

type OperationCategory string

const (
	CategoryLogin         OperationCategory = "login"
	CategoryAdminLogin    OperationCategory = "admin_login"
	CategoryPasswordReset OperationCategory = "password_reset"
	CategoryRegistration  OperationCategory = "registration"
	CategoryOTPRequest    OperationCategory = "otp_request"
)

func (c OperationCategory) String() string {
	return string(c)
}
