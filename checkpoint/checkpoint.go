// checkpoint creates IO which stores scan progress, so that scans of
// large genomes can be resumed.
package checkpoint

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/ribo/genes"
)

// log is the global logging variable.
var log = logging.MustGetLogger("checkpoint")

// STRANDS is the bucket name for all strand checkpoints.
var STRANDS = []byte("strands")

// Record is a decoded gene as stored in a checkpoint.
type Record struct {
	Label    string
	Kind     string
	Start    int
	Consumed int
	Value    string
}

// NewRecord converts a product to a record.
func NewRecord(p genes.Product) Record {
	return Record{
		Label:    p.Gene.Label,
		Kind:     p.Gene.Kind.String(),
		Start:    p.Start,
		Consumed: p.Consumed,
		Value:    fmt.Sprint(p.Record),
	}
}

// Data stores checkpoint data.
type Data struct {
	Name    string
	Cursor  int
	Records []Record
	Final   bool
}

// IO saves and loads checkpoints of a single strand.
type IO struct {
	db      *bolt.DB
	key     []byte
	last    time.Time
	seconds float64
}

// NewIO creates a new IO. Checkpoints are not saved more often than
// once in seconds by Sink.
func NewIO(db *bolt.DB, name string, seconds float64) (s *IO) {
	s = &IO{
		db:      db,
		key:     []byte(name),
		seconds: seconds,
	}
	return
}

// Save saves checkpoint to the database.
func (s *IO) Save(data *Data) error {
	// Even if saving fails, we do not want to run this code too often.
	s.SetNow()
	dataB, err := json.Marshal(data)
	if err != nil {
		log.Error("Error serializing checkpoint", err)
		return err
	}
	err = SaveData(s.db, s.key, dataB)
	if err != nil {
		log.Error("Error saving checkpoint", err)
	}
	return err
}

// Load returns the stored checkpoint or nil if there is none.
func (s *IO) Load() (*Data, error) {
	var data *Data

	b, err := LoadData(s.db, s.key)

	if err != nil || b == nil {
		return nil, err
	}

	err = json.Unmarshal(b, &data)

	if err != nil {
		return nil, err
	}

	if data == nil {
		return nil, nil
	}

	if data.Final {
		log.Noticef("Found finished scan checkpoint for %s (%d genes)", data.Name, len(data.Records))
	} else {
		log.Noticef("Found unfinished scan checkpoint for %s (cursor=%d, %d genes)", data.Name, data.Cursor, len(data.Records))
	}

	return data, nil
}

// Old returns true if last checkpoint save time too long ago.
func (s *IO) Old() bool {
	return time.Since(s.last).Seconds() > s.seconds
}

// SetNow sets last checkpoint time to now.
func (s *IO) SetNow() {
	s.last = time.Now()
}

// Sink records expressed genes and periodically saves them.
type Sink struct {
	io   *IO
	data *Data
	next genes.Sink
}

// NewSink creates a sink continuing data. Products are passed to next
// if it is not nil.
func NewSink(io *IO, data *Data, next genes.Sink) *Sink {
	return &Sink{io: io, data: data, next: next}
}

// Data returns the checkpoint data collected so far.
func (s *Sink) Data() *Data {
	return s.data
}

// Express implements genes.Sink.
func (s *Sink) Express(p genes.Product) error {
	if s.next != nil {
		if err := s.next.Express(p); err != nil {
			return err
		}
	}
	s.data.Records = append(s.data.Records, NewRecord(p))
	s.data.Cursor = p.Start + p.Consumed
	if s.io.Old() {
		return s.io.Save(s.data)
	}
	return nil
}

// Finish marks the scan as finished at cursor and saves the checkpoint.
func (s *Sink) Finish(cursor int) error {
	s.data.Cursor = cursor
	s.data.Final = true
	return s.io.Save(s.data)
}

// SaveData saves values in bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	err := db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(STRANDS)
		if err != nil {
			return err
		}

		err = b.Put(key, data)
		return err
	})
	return err
}

// LoadData loads data from bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	var data []byte
	if db == nil {
		return nil, nil
	}
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(STRANDS)
		if b == nil {
			return nil
		}

		v := b.Get(key)
		if v != nil {
			data = append(make([]byte, 0, len(v)), v...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
