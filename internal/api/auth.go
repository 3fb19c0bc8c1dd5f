package api

import (
	"context"

	"seastore/internal/domain"
)

// ObtainToken trades credentials for a token pair. The backend expects the
// email in the username field (SimpleJWT default).
func (c *Client) ObtainToken(ctx context.Context, username, password string) (domain.TokenPair, error) {
	var out domain.TokenPair
	body := map[string]string{"username": username, "password": password}
	err := c.do(ctx, "POST", "token/", body, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, username, email, password, firstName string) error {
	body := map[string]string{
		"username":   username,
		"email":      email,
		"password":   password,
		"first_name": firstName,
	}
	return c.do(ctx, "POST", "users/users/", body, nil)
}
