package fixtures

import (
	"github.com/mcdev12/leaguefixture/go/internal/models"
	"github.com/stretchr/testify/require"
)

// User is an account created to manage teams
type User struct {
	UserID   int
	Email    string
	Password string
}

func NewUser(t T, env *Env) *User {
	helper(t)

	u := &User{
		Email:    env.Data.Email(),
		Password: env.Data.Password(),
	}
	userID, err := env.API.CreateUser(env.Ctx, models.UserRequest{
		Email:    u.Email,
		Password: u.Password,
	})
	require.NoError(t, err, "create user %q", u.Email)
	u.UserID = userID

	env.Logger.Debug().Int("user_id", u.UserID).Str("email", u.Email).Msg("created user")
	return u
}
