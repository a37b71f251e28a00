package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/harrison/lsx/internal/models"
)

// JSON writes entries as a JSON array with the full field set per entry,
// compact or indented. The output always ends with a newline.
func JSON(w io.Writer, entries []models.Entry, pretty bool) error {
	if entries == nil {
		entries = []models.Entry{}
	}

	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(entries, "", "  ")
	} else {
		data, err = json.Marshal(entries)
	}
	if err != nil {
		return fmt.Errorf("encode entries: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write entries: %w", err)
	}
	return nil
}
