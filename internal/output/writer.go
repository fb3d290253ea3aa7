package output

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	LanguagesFile = "top-languages.svg"
	ActivityFile  = "activity.svg"
)

type Writer struct {
	dir string
}

func New(dir string) *Writer {
	return &Writer{dir: dir}
}

func (w *Writer) Dir() string {
	return w.dir
}

// WriteCards creates the output directory if needed and overwrites both cards.
// The two writes are not atomic as a pair.
func (w *Writer) WriteCards(languages, activity []byte) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir %s: %w", w.dir, err)
	}

	if err := w.write(LanguagesFile, languages); err != nil {
		return err
	}
	return w.write(ActivityFile, activity)
}

func (w *Writer) write(name string, data []byte) error {
	path := filepath.Join(w.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
