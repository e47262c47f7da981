package playlist

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

func demoPlaylist(limit int) *Playlist {
	p := New("test-mix", limit)
	p.Add(NewLocalSong("Alpha", "Band A", 125, ""))
	p.Add(NewOnlineSong("Beta", "Band B", 245, ""))
	p.Add(NewLocalSong("Gamma", "Band C", 61, "/srv/gamma.flac"))
	return p
}

func songNames(songs []Song) []string {
	names := make([]string, len(songs))
	for i, s := range songs {
		names[i] = s.Name()
	}
	return names
}

// =============================================================================
// FORMATTING
// =============================================================================

func TestFormatLength(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{60, "01:00"},
		{125, "02:05"},
		{3599, "59:59"},
	}
	for _, c := range cases {
		if got := FormatLength(c.seconds); got != c.want {
			t.Errorf("FormatLength(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestDescribe(t *testing.T) {
	s := NewLocalSong("Alpha", "Band A", 125, "")
	want := "Alpha - Band A (02:05)"
	if got := Describe(s); got != want {
		t.Errorf("Describe = %q, want %q", got, want)
	}
}

func TestSong_DefaultSources(t *testing.T) {
	local := NewLocalSong("Alpha", "Band A", 125, "")
	if local.Source() != "/music/Alpha.mp3" {
		t.Errorf("local default source = %q", local.Source())
	}

	online := NewOnlineSong("Night Drive", "Band B", 200, "")
	if online.Source() != "https://stream.example/Night_Drive" {
		t.Errorf("online default source = %q", online.Source())
	}
}

// =============================================================================
// LIST MANAGEMENT
// =============================================================================

func TestAddAndRemove(t *testing.T) {
	p := demoPlaylist(0)
	if p.Len() != 3 {
		t.Fatalf("len = %d, want 3", p.Len())
	}

	if !p.RemoveByName("Beta") {
		t.Fatal("RemoveByName should find Beta")
	}
	got := songNames(p.Songs())
	if len(got) != 2 || got[0] != "Alpha" || got[1] != "Gamma" {
		t.Errorf("after remove: %v", got)
	}

	if p.RemoveByName("Beta") {
		t.Error("removing an absent song should return false")
	}
}

func TestRemoveByIndex(t *testing.T) {
	p := demoPlaylist(0)
	if !p.RemoveByIndex(0) {
		t.Fatal("RemoveByIndex(0) should succeed")
	}
	if got := songNames(p.Songs()); got[0] != "Beta" {
		t.Errorf("after remove: %v", got)
	}

	if p.RemoveByIndex(-1) || p.RemoveByIndex(99) {
		t.Error("out-of-range removes should return false")
	}
}

func TestShuffle_IsAPermutation(t *testing.T) {
	p := demoPlaylist(0)
	before := songNames(p.Songs())

	p.Shuffle()

	after := songNames(p.Songs())
	sort.Strings(before)
	sort.Strings(after)
	if len(before) != len(after) {
		t.Fatalf("shuffle changed length: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("shuffle changed the song set: %v", after)
		}
	}
}

func TestShuffle_SingleSongIsNoOp(t *testing.T) {
	p := New("one", 0)
	p.Add(NewLocalSong("Only", "Band", 100, ""))
	p.Shuffle()
	if got := songNames(p.Songs()); len(got) != 1 || got[0] != "Only" {
		t.Errorf("songs after shuffle: %v", got)
	}
}

// =============================================================================
// PLAYBACK AND HISTORY
// =============================================================================

func TestPlay_RecordsHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	p := demoPlaylist(0)

	for _, idx := range []int{0, 2, 1} {
		if err := p.Play(ctx, idx); err != nil {
			t.Fatalf("Play(%d): %v", idx, err)
		}
	}

	got := songNames(p.RecentlyPlayed())
	want := []string{"Beta", "Gamma", "Alpha"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("recently played = %v, want %v", got, want)
		}
	}
}

func TestPlay_HistoryIsBounded(t *testing.T) {
	ctx := context.Background()
	p := demoPlaylist(2)

	for _, idx := range []int{0, 1, 2} {
		if err := p.Play(ctx, idx); err != nil {
			t.Fatalf("Play(%d): %v", idx, err)
		}
	}

	got := songNames(p.RecentlyPlayed())
	if len(got) != 2 {
		t.Fatalf("history length = %d, want 2", len(got))
	}
	if got[0] != "Gamma" || got[1] != "Beta" {
		t.Errorf("oldest entry should be evicted: %v", got)
	}
}

func TestPlay_IndexOutOfRange(t *testing.T) {
	p := demoPlaylist(0)
	err := p.Play(context.Background(), 7)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("want ErrIndexOutOfRange, got %v", err)
	}
	if len(p.RecentlyPlayed()) != 0 {
		t.Error("failed play must not enter the history")
	}
}

func TestPlayNext_EmptyPlaylist(t *testing.T) {
	p := New("empty", 0)
	if err := p.PlayNext(context.Background()); !errors.Is(err, ErrEmptyPlaylist) {
		t.Fatalf("want ErrEmptyPlaylist, got %v", err)
	}
}

func TestPlay_HonorsCancellation(t *testing.T) {
	p := demoPlaylist(0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := p.Play(ctx, 0)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
	if len(p.RecentlyPlayed()) != 0 {
		t.Error("cancelled play must not enter the history")
	}
}

// =============================================================================
// EXPORT
// =============================================================================

func TestExportCSV(t *testing.T) {
	p := demoPlaylist(0)
	path := filepath.Join(t.TempDir(), "tracks.csv")

	if err := p.ExportCSV(path); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 4 {
		t.Fatalf("export line count = %d, want header + 3 rows", len(lines))
	}
	if strings.TrimRight(lines[0], "\r") != "name,artist,length,kind,source" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Alpha") || !strings.Contains(lines[1], "local") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Beta") || !strings.Contains(lines[2], "online") {
		t.Errorf("second row = %q", lines[2])
	}
}
