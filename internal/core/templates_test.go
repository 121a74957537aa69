package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTemplates(t *testing.T) {
	tpl, err := BuildTemplates("users", "id", []string{"email", "name"})
	require.NoError(t, err)

	assert.Equal(t, "SELECT `id`, `email`, `name` FROM `users`", tpl.SelectSQL)
	assert.Equal(t, "INSERT INTO `users` (`email`,`name`,`id`) VALUES (?,?,?)", tpl.InsertSQL)
	assert.Equal(t, "UPDATE `users` SET `email` = ?, `name` = ? WHERE `id` = ?", tpl.UpdateSQL)
	assert.Equal(t, "DELETE FROM `users` WHERE `id` = ?", tpl.DeleteSQL)
}

func TestBuildTemplates_KeyOnly(t *testing.T) {
	tpl, err := BuildTemplates("tags", "id", nil)
	require.NoError(t, err)

	assert.Equal(t, "SELECT `id` FROM `tags`", tpl.SelectSQL)
	assert.Equal(t, "INSERT INTO `tags` (`id`) VALUES (?)", tpl.InsertSQL)
	assert.Empty(t, tpl.UpdateSQL)
	assert.Equal(t, "DELETE FROM `tags` WHERE `id` = ?", tpl.DeleteSQL)
}
