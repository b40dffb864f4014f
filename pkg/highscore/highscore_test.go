package highscore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissing(t *testing.T) {
	score, err := Load(filepath.Join(t.TempDir(), DefaultPath))
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		content string
		score   int
		fail    bool
	}{
		{"120", 120, false},
		{" 42\n", 42, false},
		{"", 0, false},
		{"abc", 0, true},
		{"-3", 0, true},
	}

	dir := t.TempDir()
	for _, tt := range tests {
		path := filepath.Join(dir, "score")
		require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

		score, err := Load(path)
		if tt.fail {
			assert.Error(t, err, "%q", tt.content)
			continue
		}
		require.NoError(t, err, "%q", tt.content)
		assert.Equal(t, tt.score, score, "%q", tt.content)
	}
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	require.NoError(t, Save(path, 800))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "800", string(data))

	assert.Error(t, Save(path, -1))
	assert.Error(t, Save(filepath.Join(path, "nested"), 1))
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)

	best, improved, err := Update(path, 100)
	require.NoError(t, err)
	assert.True(t, improved)
	assert.Equal(t, 100, best)

	best, improved, err = Update(path, 60)
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Equal(t, 100, best)

	best, improved, err = Update(path, 100)
	require.NoError(t, err)
	assert.False(t, improved)
	assert.Equal(t, 100, best)

	score, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 100, score)
}

func TestUpdateMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte("high"), 0644))

	_, improved, err := Update(path, 10)
	assert.Error(t, err)
	assert.False(t, improved)
}
