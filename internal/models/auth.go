package models

// Login represents the credentials submitted for admin login.
type Login struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	RecaptchaToken string `json:"recaptchaToken,omitempty"`
}

// LoginOutcome is the terminal verdict of a login attempt. Every attempt
// resolves to exactly one outcome, and the outcome alone decides the HTTP
// status code.
type LoginOutcome string

const (
	LoginSuccess              LoginOutcome = "success"
	LoginInvalidCredentials   LoginOutcome = "invalid_credentials"
	LoginMissingFields        LoginOutcome = "missing_fields"
	LoginBotCheckRequired     LoginOutcome = "bot_check_required"
	LoginBotCheckFailed       LoginOutcome = "bot_check_failed"
	LoginAccountMisconfigured LoginOutcome = "account_misconfigured"
	LoginInternalError        LoginOutcome = "internal_error"
)

// LoginResult is what the verification pipeline hands back to the handler.
// Admin and Token are set only on LoginSuccess, and Admin never carries the
// stored password hash.
type LoginResult struct {
	Outcome LoginOutcome
	Admin   *Admin
	Token   string
}
