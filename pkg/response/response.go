package response

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries a field -> messages map so clients can
// surface the first entry per field inline.
type ValidationErrorResponse struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

type TokenResponse struct {
	Token  string `json:"token"`
	UID    uint   `json:"user_id"`
	Name   string `json:"name"`
	RoleID uint   `json:"role_id"`
}
