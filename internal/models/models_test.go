package models

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/TechXTT/blog/pkg/logger"
	"github.com/TechXTT/blog/pkg/orm"
)

var idPattern = regexp.MustCompile(`^\d{15}[0-9a-f]{32}000$`)

func TestNextID(t *testing.T) {
	a, b := NextID(), NextID()
	assert.Len(t, a, 50)
	assert.Regexp(t, idPattern, a)
	assert.NotEqual(t, a, b)
}

func TestNow(t *testing.T) {
	before := float64(time.Now().Unix())
	assert.GreaterOrEqual(t, Now(), before)
}

func TestSchemas(t *testing.T) {
	schemas := Schemas()
	require.Len(t, schemas, 3)

	tables := []string{}
	for _, s := range schemas {
		assert.Equal(t, "id", s.PrimaryKey())
		tables = append(tables, s.Table())
	}
	assert.Equal(t, []string{"users", "blogs", "comments"}, tables)
	assert.Equal(t,
		"INSERT INTO `users` (`email`,`passwd`,`admin`,`name`,`image`,`created_at`,`id`) VALUES (?,?,?,?,?,?,?)",
		UserSchema.InsertSQL())
}

func TestUsers_SaveGeneratesIDAndNormalisesEmail(t *testing.T) {
	conn, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = conn.Close() })
	_, err = conn.Exec("CREATE TABLE `users` (" +
		"`id` varchar(50) PRIMARY KEY, `email` varchar(50), `passwd` varchar(50), `admin` boolean, " +
		"`name` varchar(50), `image` varchar(500), `created_at` real)")
	require.NoError(t, err)

	ctx := logger.ContextWithLogger(context.Background(), logger.NewLogger(logger.TestConfig()))
	users := NewUsers(orm.NewDB(conn, orm.SQLite))

	u := &User{Email: "  Test@Example.COM ", Passwd: "x", Name: "Test", Image: "about:blank"}
	require.NoError(t, users.Save(ctx, u))
	assert.Regexp(t, idPattern, u.ID)
	assert.NotZero(t, u.CreatedAt)

	got, err := users.Find(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "test@example.com", got.Email)
	assert.Equal(t, u.CreatedAt, got.CreatedAt)
	assert.False(t, got.Admin)
}
