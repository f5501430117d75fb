package recording

import (
	"archive/zip"
	"os"

	"github.com/pkg/errors"
)

type ArchiveFile struct {
	Name string
	Body []byte
}

// MakeArchive writes files into a new zip archive at filename, replacing any existing file.
func MakeArchive(filename string, files []ArchiveFile) error {
	out, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create archive")
	}

	w := zip.NewWriter(out)

	for _, file := range files {
		f, err := w.Create(file.Name)
		if err != nil {
			out.Close()
			return errors.Wrapf(err, "could not add %s to archive", file.Name)
		}

		if _, err := f.Write(file.Body); err != nil {
			out.Close()
			return errors.Wrapf(err, "could not write %s to archive", file.Name)
		}
	}

	if err := w.Close(); err != nil {
		out.Close()
		return errors.Wrap(err, "could not finalize archive")
	}

	return errors.Wrap(out.Close(), "could not close archive")
}
