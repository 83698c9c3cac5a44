// utils/auth.go
package utils

import (
	"errors"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	SessionCustomerID   = "customer_id"
	SessionCustomerName = "customer_name"
	SessionAdminFlag    = "admin_authenticated"
)

// Hash password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// Check password
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// GenerateToken issues a JWT for API clients that cannot carry the
// session cookie.
func GenerateToken(customerID uint) (string, error) {
	expiryHours := 24
	if env := os.Getenv("JWT_EXPIRY_HOURS"); env != "" {
		if h, err := strconv.Atoi(env); err == nil {
			expiryHours = h
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(customerID), 10),
		"exp": time.Now().Add(time.Duration(expiryHours) * time.Hour).Unix(),
		"iat": time.Now().Unix(),
	})

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return "", errors.New("JWT_SECRET not set")
	}

	return token.SignedString([]byte(secret))
}

// ParseToken returns the customer id carried by a bearer token.
func ParseToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return 0, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, errors.New("invalid token subject")
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// CurrentCustomerID resolves the authenticated customer from the session.
func CurrentCustomerID(c *gin.Context) (uint, bool) {
	v := sessions.Default(c).Get(SessionCustomerID)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func customerIDFromBearer(c *gin.Context) (uint, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return 0, false
	}
	if len(header) > 7 && strings.ToUpper(header[0:6]) == "BEARER" {
		header = header[7:]
	}
	id, err := ParseToken(header)
	if err != nil {
		return 0, false
	}
	return id, true
}

// LoginRequired resolves the request identity from the session cookie or,
// failing that, a bearer token. Unauthenticated requests get the original
// flash-and-redirect treatment.
func LoginRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id, ok := CurrentCustomerID(c); ok {
			c.Set("customerId", id)
			c.Next()
			return
		}
		if id, ok := customerIDFromBearer(c); ok {
			c.Set("customerId", id)
			c.Next()
			return
		}
		AddFlash(c, "warning", "Please log in to access this page.")
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
	}
}

// AdminRequired gates the /admin surface on the admin session flag.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if v := sessions.Default(c).Get(SessionAdminFlag); v == true {
			c.Next()
			return
		}
		AddFlash(c, "warning", "Admin access required.")
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}

// CredentialVerifier checks an operator identity/secret pair. Handlers only
// see this interface so the mechanism can be swapped out.
type CredentialVerifier interface {
	Verify(identity, secret string) bool
}

// EnvAdminVerifier compares against ADMIN_USERNAME/ADMIN_PASSWORD, falling
// back to the stock admin/admin123 pair.
type EnvAdminVerifier struct{}

func (EnvAdminVerifier) Verify(identity, secret string) bool {
	username := os.Getenv("ADMIN_USERNAME")
	if username == "" {
		username = "admin"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	return identity == username && secret == password
}

// AdminVerifier is the verifier the admin login handler consults.
var AdminVerifier CredentialVerifier = EnvAdminVerifier{}
