package game

import (
	"errors"

	"github.com/ncruces/zenity"
)

// pickMusic asks the user for a track. An empty path with a nil error means
// the dialog was cancelled.
func pickMusic() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Choose music for the bloom"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", err
	}
	return filename, nil
}
