package server

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abhisek/toeiz/internal/auth"
)

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	return hash
}
