package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/Skotchmaster/project_marketplace/internal/hash"
	"github.com/Skotchmaster/project_marketplace/internal/tokens"
	"github.com/Skotchmaster/project_marketplace/internal/transport"
)

type AdminService struct {
	Username     string
	PasswordHash string
	Secret       []byte
	TokenTTL     time.Duration
}

// NewAdminService hashes a plain password when no precomputed hash is configured.
func NewAdminService(username, passwordHash, password string, secret []byte, ttl time.Duration) (*AdminService, error) {
	if passwordHash == "" {
		h, err := hash.HashPassword(password)
		if err != nil {
			return nil, err
		}
		passwordHash = h
	}
	return &AdminService{
		Username:     username,
		PasswordHash: passwordHash,
		Secret:       secret,
		TokenTTL:     ttl,
	}, nil
}

func (s *AdminService) Login(_ context.Context, req transport.AdminLoginRequest) (*transport.AdminLoginResponse, error) {
	userOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(s.Username)) == 1
	passOK := hash.CheckPassword(s.PasswordHash, req.Password)
	if !userOK || !passOK {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := tokens.SignAdminToken(s.Username, s.Secret, time.Now().UTC(), s.TokenTTL)
	if err != nil {
		return nil, err
	}
	return &transport.AdminLoginResponse{Success: true, Token: token, ExpiresAt: exp}, nil
}
