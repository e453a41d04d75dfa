package contracts

type GoogleAuthRequest struct {
	Credential string `json:"credential" binding:"required"`
}

type GoogleAuthResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}
