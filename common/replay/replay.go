package replay

import (
	"archive/zip"
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/bytearena/gridarena/common/recording"
	"github.com/bytearena/gridarena/common/types"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/pkg/errors"
)

var ErrIncompleteArchive = errors.New("record archive misses an entry")

// Replayer holds a recorded game read from an archive written by recording.Recorder.
type Replayer struct {
	filename string
	metadata recording.RecordMetadata
	frames   []types.VizMessage
}

func NewReplayer(filename string) (*Replayer, error) {
	reader, err := zip.OpenReader(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not open record archive")
	}
	defer reader.Close()

	r := &Replayer{filename: filename}
	found := make(map[string]bool)

	for _, file := range reader.File {
		switch file.Name {
		case recording.MetadataEntry:
			err = readEntry(file, r.readMetadata)
		case recording.RecordEntry:
			err = readEntry(file, r.readFrames)
		default:
			continue
		}

		if err != nil {
			return nil, errors.Wrapf(err, "could not read %s", file.Name)
		}
		found[file.Name] = true
	}

	for _, entry := range []string{recording.MetadataEntry, recording.RecordEntry} {
		if !found[entry] {
			return nil, errors.Wrap(ErrIncompleteArchive, entry)
		}
	}

	if r.metadata.Map == nil {
		return nil, errors.Wrap(ErrIncompleteArchive, "map")
	}

	return r, nil
}

func readEntry(file *zip.File, read func(io.Reader) error) error {
	fd, err := file.Open()
	if err != nil {
		return err
	}
	defer fd.Close()

	return read(fd)
}

func (r *Replayer) readMetadata(fd io.Reader) error {
	return json.NewDecoder(fd).Decode(&r.metadata)
}

func (r *Replayer) readFrames(fd io.Reader) error {
	reader := bufio.NewReader(fd)

	for {
		line, err := utils.ReadFullLine(reader)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		var frame types.VizMessage
		if err := json.Unmarshal([]byte(line), &frame); err != nil {
			return errors.Wrapf(err, "frame %d", len(r.frames))
		}

		r.frames = append(r.frames, frame)
	}
}

func (r *Replayer) GetMetadata() recording.RecordMetadata {
	return r.metadata
}

func (r *Replayer) GetFrames() []types.VizMessage {
	return r.frames
}

// Play streams the frames, one every interval, and closes the channel after the last one or
// when ctx is done.
func (r *Replayer) Play(ctx context.Context, interval time.Duration) <-chan types.VizMessage {
	ch := make(chan types.VizMessage)

	go func() {
		defer close(ch)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for i, frame := range r.frames {
			if i > 0 {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
				}
			}

			select {
			case <-ctx.Done():
				return
			case ch <- frame:
			}
		}

		utils.Debug("replay", "finished replaying "+r.filename)
	}()

	return ch
}
