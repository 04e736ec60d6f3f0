package auth

// Token is the response of `POST /api/login/access-token`.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
