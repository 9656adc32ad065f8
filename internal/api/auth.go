package api

import (
	"context"
	"net/http"

	"github.com/Edem2000/ledgerly/internal/model"
)

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Language  string `json:"language"`
}

// Register creates a new user account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (model.User, error) {
	var resp struct {
		User userDTO `json:"user"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/register", req, &resp); err != nil {
		return model.User{}, err
	}
	return resp.User.toModel(), nil
}

// Login exchanges credentials for the user profile and a token pair.
func (c *Client) Login(ctx context.Context, email, password string) (model.User, model.Tokens, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		User   userDTO      `json:"user"`
		Tokens model.Tokens `json:"tokens"`
	}
	if err := c.do(ctx, http.MethodPost, "/users/login", req, &resp); err != nil {
		return model.User{}, model.Tokens{}, err
	}
	return resp.User.toModel(), resp.Tokens, nil
}
