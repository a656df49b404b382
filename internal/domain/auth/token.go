package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"motorph/internal/domain/employee"
)

type Claims struct {
	EmployeeID  int      `json:"eid"`
	Department  string   `json:"dept"`
	Permissions []string `json:"perms"`
	jwt.RegisteredClaims
}

// ClaimsFor builds the token claims of an authenticated employee.
func ClaimsFor(emp employee.Employee) Claims {
	return Claims{
		EmployeeID:  emp.ID(),
		Department:  string(emp.Department()),
		Permissions: PermissionsFor(emp.Permissions()),
	}
}

func (c Claims) Has(perm string) bool {
	return HasPermission(c.Permissions, perm)
}

func GenerateToken(secret string, claims Claims, ttl time.Duration) (string, error) {
	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(secret, tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
