package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAuthService_PasswordHashRoundtrip(t *testing.T) {
	svc := NewAuthService("test_secret")

	hash, err := svc.HashPassword("s3cret!")
	assert.NoError(t, err)
	assert.True(t, svc.CheckPasswordHash("s3cret!", hash))
	assert.False(t, svc.CheckPasswordHash("wrong", hash))
}

func TestAuthService_TokenRoundtrip(t *testing.T) {
	svc := NewAuthService("test_secret")
	operatorID := uuid.New()

	token, err := svc.GenerateToken(operatorID)
	assert.NoError(t, err)

	got, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, operatorID, got)
}

func TestAuthService_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	token, err := NewAuthService("secret_a").GenerateToken(uuid.New())
	assert.NoError(t, err)

	_, err = NewAuthService("secret_b").ValidateToken(token)
	assert.Error(t, err)
}
