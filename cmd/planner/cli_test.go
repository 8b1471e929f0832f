package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wichananm65/pergola-planner/internal/recommend"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("PERGOLA_CATALOG_FILE", "")
	t.Setenv("PERGOLA_JWT_SECRET", "")
	t.Setenv("JWT_SECRET", "")
	return run(args...)
}

func run(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestParseSizeCmd(t *testing.T) {
	out, err := execute(t, "parse-size", "14 by 16 ft")
	require.NoError(t, err)
	assert.Equal(t, "width=14 depth=16 area=224\n", out)

	_, err = execute(t, "parse-size", "fourteen")
	assert.Error(t, err)
}

func TestRecommendCmd_JSON(t *testing.T) {
	out, err := execute(t, "recommend", "--width", "15", "--depth", "20", "--style", "tropical", "-o", "json")
	require.NoError(t, err)

	var resp recommend.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, 2, resp.Count)
	assert.Nil(t, resp.Fallback)

	// tropical bonus lifts the Orlando plan above the catalog-first LA plan
	assert.Equal(t, "orlando-oasis-12x16", resp.Recommendations[0].ID)
	assert.Equal(t, 160, resp.Recommendations[0].Score)
	assert.Equal(t, "1.5", resp.Recommendations[0].BufferWidth)
	assert.Equal(t, "2.0", resp.Recommendations[0].BufferDepth)
	assert.Equal(t, "la-luxe-14x14", resp.Recommendations[1].ID)
	assert.Equal(t, 65, resp.Recommendations[1].AreaCoveragePct)
}

func TestRecommendCmd_TextFallback(t *testing.T) {
	out, err := execute(t, "recommend", "--width", "5", "--depth", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "No direct matches found")
	assert.Contains(t, out, "bamboodesigns.com")
}

func TestRecommendCmd_CatalogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plans.yaml")
	yml := "plans:\n  - title: Corner 8x8\n    slug: corner\n    specs:\n      - {label: Size, value: 8 x 8}\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	out, err := execute(t, "recommend", "--width", "10", "--depth", "10", "--catalog", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "Corner 8x8")
	assert.Contains(t, lines[1], "64%")
	assert.Contains(t, lines[1], "1.0 ft")
}

func TestRecommendCmd_InvalidInput(t *testing.T) {
	_, err := execute(t, "recommend", "--width", "0", "--depth", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width")
	assert.Contains(t, err.Error(), "depth")

	_, err = execute(t, "recommend", "--width", "10", "--depth", "10", "--style", "gothic")
	assert.Error(t, err)
}

func TestTokenCmd(t *testing.T) {
	out, err := execute(t, "token", "--secret", "s3cret", "--subject", "ops", "--ttl", "1h")
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	tok, err := jwt.ParseWithClaims(strings.TrimSpace(out), claims, func(*jwt.Token) (interface{}, error) {
		return []byte("s3cret"), nil
	})
	require.NoError(t, err)
	assert.True(t, tok.Valid)
	assert.Equal(t, "ops", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)

	_, err = execute(t, "token")
	assert.Error(t, err)
}

func TestTokenCmd_SecretFromDotEnv(t *testing.T) {
	// registered so the values are restored after the test, then unset so
	// the .env file is allowed to provide them
	for _, k := range []string{"PERGOLA_JWT_SECRET", "JWT_SECRET"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=from-dotenv\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	out, err := run("token", "--subject", "ops")
	require.NoError(t, err)

	_, err = jwt.Parse(strings.TrimSpace(out), func(*jwt.Token) (interface{}, error) {
		return []byte("from-dotenv"), nil
	})
	assert.NoError(t, err)
}

func TestMintToken_NoExpiry(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	s, err := mintToken("k", "admin", 0, now)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(s, claims, func(*jwt.Token) (interface{}, error) { return []byte("k"), nil })
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.Equal(t, now.Unix(), claims.IssuedAt.Unix())
}
