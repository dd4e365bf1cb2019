package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/SscSPs/general_ledger/internal/middleware"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetTokenFlags() {
	rootCmd.SetArgs(nil)
	flagTokenUser, flagTokenTenant, flagTokenTTL = "", "", 0
}

func TestTokenCommand(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-test-secret")
	t.Setenv("JWT_ISSUER", "gl-cli-test")
	t.Setenv("TAX_PROVIDER_URL", "http://localhost:1")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"token", "--user", "user-1", "--tenant", "tenant-1", "--ttl", "5m"})
	t.Cleanup(resetTokenFlags)

	require.NoError(t, Execute())

	raw := strings.TrimSpace(out.String())
	claims := &middleware.LedgerClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("cli-test-secret"), nil
	}, jwt.WithIssuer("gl-cli-test"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "tenant-1", claims.TenantID)
}

func TestTokenCommand_RequiresFlags(t *testing.T) {
	rootCmd.SetArgs([]string{"token", "--user", "user-1"})
	t.Cleanup(resetTokenFlags)

	err := Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--tenant")
}
