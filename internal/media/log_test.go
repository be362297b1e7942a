package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestWriteLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Week03_Media_Log.yml")
	log := Log{
		Week: "3",
		Unit: "Camera Basics & Composition",
		Entries: []Entry{
			{Day: 1, Kind: "image", Query: "camera angles camera", URL: "https://images.example.com/1.jpg"},
			{Day: 1, Kind: "video", Title: "Camera Angles Explained", URL: "https://www.youtube.com/watch?v=SlNviMsi0K0"},
		},
	}
	require.NoError(t, WriteLog(path, log))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded Log
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, log, decoded)
}
