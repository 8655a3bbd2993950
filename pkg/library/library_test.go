package library

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEvents(t *testing.T) {
	fsys := fstest.MapFS{
		"NHL/2026-01-22-EDM-PIT.mp4":                       {Data: make([]byte, 10)},
		"NHL/notes.txt":                                    {Data: []byte("not a video")},
		"UFC/UFC 315/UFC 315 Early Prelims.mkv":            {Data: make([]byte, 20)},
		"Premier League/2026-02-08 Liverpool vs Man City.mkv": {Data: make([]byte, 30)},
		"loose recording.ts":                               {Data: make([]byte, 5)},
		".stversions/NHL/old.mp4":                          {Data: make([]byte, 5)},
	}

	files, err := NewWithFS(fsys, "/media").FindEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 4)

	bySeries := map[string]EventFile{}
	for _, f := range files {
		bySeries[f.RelativePath] = f
	}

	nhl := bySeries["NHL/2026-01-22-EDM-PIT.mp4"]
	assert.Equal(t, "NHL", nhl.SeriesName)
	assert.Equal(t, "2026-01-22-EDM-PIT.mp4", nhl.Name)
	assert.Equal(t, "/media/NHL/2026-01-22-EDM-PIT.mp4", nhl.AbsolutePath)
	assert.EqualValues(t, 10, nhl.Size)

	// nested directories still attribute the top-level series
	ufc := bySeries["UFC/UFC 315/UFC 315 Early Prelims.mkv"]
	assert.Equal(t, "UFC", ufc.SeriesName)

	loose := bySeries["loose recording.ts"]
	assert.Empty(t, loose.SeriesName)
}

func TestFindEventsCancelled(t *testing.T) {
	fsys := fstest.MapFS{
		"NHL/a.mp4": {Data: make([]byte, 1)},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewWithFS(fsys, "/media").FindEvents(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, isVideoFile("game.MKV"))
	assert.True(t, isVideoFile("game.mp4"))
	assert.False(t, isVideoFile("game.nfo"))
	assert.False(t, isVideoFile("game"))
}
