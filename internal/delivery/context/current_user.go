package context

import (
	"github.com/riaj03/savyo/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyCurrentUser is the key for storing the authenticated account on the
// request. Only the authentication middleware writes it.
const KeyCurrentUser ContextKey = "current_user"

// SetCurrentUser stores the authenticated account in echo.Context.
func SetCurrentUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyCurrentUser), user)
}

// GetCurrentUser extracts the authenticated account from echo.Context.
// The second return is false on unauthenticated requests.
func GetCurrentUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyCurrentUser)).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}

	return user, true
}
