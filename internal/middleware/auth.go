package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"medicare-backend/internal/domain"
	"medicare-backend/internal/repository"
	"medicare-backend/pkg/utils"
)

const identityKey = "identity"

// TokenRequired resolves the bearer token to a live user record and
// stashes a typed identity in the context. Handlers never touch the
// token themselves. Every failure mode here is a 401; banned accounts
// are cut off even when their token is still valid.
func TokenRequired(userRepo repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": utils.ErrTokenMissing.Error()})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": utils.ErrTokenMalformed.Error()})
			return
		}

		claims, err := utils.ParseJWTToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		user, err := userRepo.FindByID(c.Request.Context(), claims.UserID)
		if err != nil {
			log.Ctx(c.Request.Context()).Debug().Err(err).Str("component", "TokenRequired").Msg("")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
			return
		}

		if user.IsBanned {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "account is banned"})
			return
		}

		role := user.Role
		if role == "" {
			role = domain.RoleCustomer
		}

		c.Set(identityKey, domain.Identity{
			UserID: user.ID.Hex(),
			Email:  user.Email,
			Role:   role,
		})
		c.Next()
	}
}

// AdminRequired must run after TokenRequired.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok || !identity.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}

// GetIdentity extracts the resolved caller from the gin context.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}, false
	}
	identity, ok := value.(domain.Identity)
	return identity, ok
}
