package dto

// LoginReq は/auth/loginエンドポイントのリクエストボディを表します。
// 必須フィールドとメール形式のバリデーションを含みます。
type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRes は認証成功時のレスポンスボディを表します。
type LoginRes struct {
	Token  string `json:"token"`
	UserID uint   `json:"user_id"`
}
