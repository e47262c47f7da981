/*
Package playlist implements the in-memory music playlist manager.

PURPOSE:
  A secondary demonstration app alongside the payroll registry. Songs come
  in two variants with polymorphic playback - local files and streamed
  URLs - and playlists track an ordered song list plus a bounded
  recently-played history.

KEY CONCEPTS:
  - Song: interface with Play(ctx); LocalSong and OnlineSong implement it
  - Playlist: add/remove/shuffle/play over an ordered list
  - Recently played: bounded history, oldest entries evicted

SEE ALSO:
  - playlist.go: The playlist manager
  - export.go: CSV export of a playlist's tracks
*/
package playlist

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/warp/payroll-engine/internal/logger"
)

// =============================================================================
// SONG - Polymorphic playback
// =============================================================================

// Song is one playlist entry. Play blocks for a short simulated playback
// and honors context cancellation.
type Song interface {
	ID() string
	Name() string
	Artist() string
	LengthSeconds() int

	// Source describes where playback comes from: a file path for local
	// songs, a stream URL for online ones.
	Source() string

	Play(ctx context.Context) error
}

// FormatLength renders a length in seconds as MM:SS.
func FormatLength(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Describe renders a song for display: name, artist and MM:SS length.
func Describe(s Song) string {
	return fmt.Sprintf("%s - %s (%s)", s.Name(), s.Artist(), FormatLength(s.LengthSeconds()))
}

type songInfo struct {
	id      string
	name    string
	artist  string
	seconds int
}

func newSongInfo(name, artist string, seconds int) songInfo {
	return songInfo{id: uuid.NewString(), name: name, artist: artist, seconds: seconds}
}

func (s songInfo) ID() string         { return s.id }
func (s songInfo) Name() string       { return s.name }
func (s songInfo) Artist() string     { return s.artist }
func (s songInfo) LengthSeconds() int { return s.seconds }

// =============================================================================
// LOCAL SONG - Played from a file on disk
// =============================================================================

type LocalSong struct {
	songInfo
	FilePath string
}

// NewLocalSong creates a local song. An empty filePath defaults to a path
// derived from the song name.
func NewLocalSong(name, artist string, lengthSeconds int, filePath string) *LocalSong {
	if filePath == "" {
		filePath = fmt.Sprintf("/music/%s.mp3", name)
	}
	return &LocalSong{songInfo: newSongInfo(name, artist, lengthSeconds), FilePath: filePath}
}

func (s *LocalSong) Source() string { return s.FilePath }

func (s *LocalSong) Play(ctx context.Context) error {
	logger.InfoLog(ctx, "[Local] playing %q by %s from file %s", s.name, s.artist, s.FilePath)
	return simulatePlayback(ctx, 300*time.Millisecond)
}

// =============================================================================
// ONLINE SONG - Streamed from a URL
// =============================================================================

type OnlineSong struct {
	songInfo
	StreamURL string
}

// NewOnlineSong creates a streamed song. An empty streamURL defaults to a
// URL derived from the song name.
func NewOnlineSong(name, artist string, lengthSeconds int, streamURL string) *OnlineSong {
	if streamURL == "" {
		streamURL = fmt.Sprintf("https://stream.example/%s", strings.ReplaceAll(name, " ", "_"))
	}
	return &OnlineSong{songInfo: newSongInfo(name, artist, lengthSeconds), StreamURL: streamURL}
}

func (s *OnlineSong) Source() string { return s.StreamURL }

func (s *OnlineSong) Play(ctx context.Context) error {
	logger.InfoLog(ctx, "[Online] streaming %q by %s from %s", s.name, s.artist, s.StreamURL)
	return simulatePlayback(ctx, 400*time.Millisecond)
}

var (
	_ Song = (*LocalSong)(nil)
	_ Song = (*OnlineSong)(nil)
)

// simulatePlayback stands in for real audio output. The delay is a fraction
// of the song length so demos never hang.
func simulatePlayback(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
