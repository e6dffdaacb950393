package backend

import (
	"context"
	"fmt"
	"net/http"

	"hotelops-dashboard/internal/models"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (models.LoginResult, error) {
	res, err := send[models.LoginResult](ctx, c, http.MethodPost, "/api/auth/login", creds)
	if err != nil {
		return res, err
	}
	if res.Token == "" {
		return res, fmt.Errorf("%w: login response has no token", ErrUnexpectedShape)
	}
	return res, nil
}
