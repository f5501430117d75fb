package recording

import (
	"bytes"
	"encoding/json"
	"strconv"
	"sync"
	"time"

	"github.com/bytearena/gridarena/common/types"
	"github.com/bytearena/gridarena/common/utils"
	"github.com/bytearena/gridarena/game/arenamap"
	"github.com/bytearena/gridarena/game/specs"
	"github.com/bytearena/gridarena/game/state"
	"github.com/pkg/errors"
	"github.com/segmentio/ksuid"
)

const (
	MetadataEntry = "RecordMetadata"
	RecordEntry   = "Record"
)

type RecordMetadata struct {
	Id    string                 `json:"id"`
	Date  string                 `json:"date"`
	Map   *arenamap.MapContainer `json:"map"`
	Specs specs.ArenaSpecs       `json:"specs"`
}

// Recorder is a renderer writing one JSON frame per tick. The frames and the metadata are
// archived to a zip file when the simulation stops.
type Recorder struct {
	filename string
	metadata RecordMetadata

	lock   sync.Mutex
	buffer bytes.Buffer
	frames int

	once sync.Once
	err  error
}

func NewRecorder(filename string, arenaMap *arenamap.MapContainer, s specs.ArenaSpecs) *Recorder {
	return &Recorder{
		filename: filename,
		metadata: RecordMetadata{
			Id:    ksuid.New().String(),
			Date:  time.Now().Format(time.RFC3339),
			Map:   arenaMap,
			Specs: s,
		},
	}
}

func (r *Recorder) GetId() string {
	return r.metadata.Id
}

func (r *Recorder) GetFilename() string {
	return r.filename
}

func (r *Recorder) Display(ws *state.WorldState) error {
	data, err := json.Marshal(types.MakeVizMessage(r.metadata.Id, ws))
	if err != nil {
		return errors.Wrapf(err, "could not serialize frame %d", ws.Tick)
	}

	r.lock.Lock()
	defer r.lock.Unlock()

	r.buffer.Write(data)
	r.buffer.WriteByte('\n')
	r.frames++

	return nil
}

func (r *Recorder) Stop() {
	if err := r.Close(); err != nil {
		utils.Debug("recorder", "could not write record archive: "+err.Error())
	}
}

// Close writes the archive once; later calls return the result of the first one.
func (r *Recorder) Close() error {
	r.once.Do(func() {
		r.err = r.writeArchive()
	})

	return r.err
}

func (r *Recorder) writeArchive() error {
	metadata, err := json.Marshal(r.metadata)
	if err != nil {
		return errors.Wrap(err, "could not serialize RecordMetadata")
	}

	r.lock.Lock()
	record := append([]byte(nil), r.buffer.Bytes()...)
	frames := r.frames
	r.lock.Unlock()

	err = MakeArchive(r.filename, []ArchiveFile{
		{Name: MetadataEntry, Body: metadata},
		{Name: RecordEntry, Body: record},
	})
	if err != nil {
		return err
	}

	utils.Debug("recorder", "wrote "+strconv.Itoa(frames)+" frames of game "+r.metadata.Id+" to "+r.filename)
	return nil
}
