package playlist

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
)

// DefaultRecentLimit bounds the recently-played history when no explicit
// limit is configured.
const DefaultRecentLimit = 10

var (
	// ErrEmptyPlaylist is returned when playing from a playlist with no songs.
	ErrEmptyPlaylist = errors.New("playlist is empty")

	// ErrIndexOutOfRange is returned for play/remove with an invalid index.
	ErrIndexOutOfRange = errors.New("song index out of range")
)

// Playlist holds an ordered list of songs and a bounded recently-played
// history, newest plays kept last.
type Playlist struct {
	Name string

	songs  []Song
	recent []Song
	limit  int
}

// New creates a playlist. A non-positive recentLimit falls back to
// DefaultRecentLimit.
func New(name string, recentLimit int) *Playlist {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &Playlist{Name: name, limit: recentLimit}
}

// Add appends a song to the end of the playlist.
func (p *Playlist) Add(s Song) {
	p.songs = append(p.songs, s)
}

// RemoveByName removes the first song with a matching name. Returns false
// when no song matches.
func (p *Playlist) RemoveByName(name string) bool {
	for i, s := range p.songs {
		if s.Name() == name {
			p.songs = append(p.songs[:i], p.songs[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveByIndex removes the song at a 0-based index. Returns false when the
// index is invalid.
func (p *Playlist) RemoveByIndex(index int) bool {
	if index < 0 || index >= len(p.songs) {
		return false
	}
	p.songs = append(p.songs[:index], p.songs[index+1:]...)
	return true
}

// Shuffle reorders the playlist in place. Fewer than two songs is a no-op.
func (p *Playlist) Shuffle() {
	if len(p.songs) <= 1 {
		return
	}
	rand.Shuffle(len(p.songs), func(i, j int) {
		p.songs[i], p.songs[j] = p.songs[j], p.songs[i]
	})
}

// Play plays the song at the given index polymorphically and records it in
// the recently-played history.
func (p *Playlist) Play(ctx context.Context, index int) error {
	if index < 0 || index >= len(p.songs) {
		return fmt.Errorf("%w: %d (0..%d)", ErrIndexOutOfRange, index, len(p.songs)-1)
	}
	song := p.songs[index]
	if err := song.Play(ctx); err != nil {
		return err
	}
	p.recordPlay(song)
	return nil
}

// PlayNext plays the first song, queue-style, leaving it in the playlist.
func (p *Playlist) PlayNext(ctx context.Context) error {
	if len(p.songs) == 0 {
		return ErrEmptyPlaylist
	}
	return p.Play(ctx, 0)
}

func (p *Playlist) recordPlay(s Song) {
	p.recent = append(p.recent, s)
	if len(p.recent) > p.limit {
		p.recent = p.recent[len(p.recent)-p.limit:]
	}
}

// Songs returns a copy of the current song order.
func (p *Playlist) Songs() []Song {
	out := make([]Song, len(p.songs))
	copy(out, p.songs)
	return out
}

// RecentlyPlayed returns the history newest first, at most the configured
// limit of entries.
func (p *Playlist) RecentlyPlayed() []Song {
	out := make([]Song, len(p.recent))
	for i, s := range p.recent {
		out[len(p.recent)-1-i] = s
	}
	return out
}

func (p *Playlist) Len() int { return len(p.songs) }
