package playlist

import (
	"github.com/warp/payroll-engine/internal/csvutil"
)

// TrackRow is the CSV shape of one exported song.
type TrackRow struct {
	Name   string `csv:"name"`
	Artist string `csv:"artist"`
	Length string `csv:"length"`
	Kind   string `csv:"kind"`
	Source string `csv:"source"`
}

// ExportCSV writes the playlist's tracks, in playlist order, to a CSV file.
func (p *Playlist) ExportCSV(filePath string) error {
	rows := make([]TrackRow, len(p.songs))
	for i, s := range p.songs {
		kind := "online"
		if _, ok := s.(*LocalSong); ok {
			kind = "local"
		}
		rows[i] = TrackRow{
			Name:   s.Name(),
			Artist: s.Artist(),
			Length: FormatLength(s.LengthSeconds()),
			Kind:   kind,
			Source: s.Source(),
		}
	}
	return csvutil.Write(filePath, rows)
}
