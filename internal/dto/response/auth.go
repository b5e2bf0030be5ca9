package response

type LoginResponse struct {
	Username    string `json:"username"`
	AccessToken string `json:"accessToken"`
}

type SignupResponse struct {
	Username string `json:"username"`
}

type UserTypeResponse struct {
	UserType int `json:"userType"`
}
