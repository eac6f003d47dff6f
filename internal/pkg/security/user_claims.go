package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims Token 中携带的业务身份信息，由外部身份服务签发
type UserClaims struct {
	UserID   uint64   `json:"user_id"`
	Nickname string   `json:"nickname"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}
