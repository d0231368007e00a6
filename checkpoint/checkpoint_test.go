package checkpoint

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/ribo/accumulator"
	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/genes"
	"bitbucket.org/Davydov/ribo/neuro"
)

func init() {
	logging.SetLevel(logging.WARNING, "checkpoint")
}

func openDB(tst *testing.T) *bolt.DB {
	db, err := bolt.Open(filepath.Join(tst.TempDir(), "checkpoint.db"), 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		tst.Fatal(err)
	}
	tst.Cleanup(func() { db.Close() })
	return db
}

func TestLoadEmpty(tst *testing.T) {
	db := openDB(tst)
	data, err := NewIO(db, "chr1", 0).Load()
	if err != nil || data != nil {
		tst.Error("Expected no checkpoint:", data, err)
	}
	// nil database is a no-op
	if err := NewIO(nil, "chr1", 0).Save(&Data{Name: "chr1"}); err != nil {
		tst.Error(err)
	}
}

func TestSaveLoad(tst *testing.T) {
	db := openDB(tst)
	io := NewIO(db, "chr1", 0)
	in := &Data{
		Name:    "chr1",
		Cursor:  12,
		Records: []Record{{Label: "x", Kind: "accumulator", Start: 4, Consumed: 8, Value: "4"}},
	}
	if err := io.Save(in); err != nil {
		tst.Fatal(err)
	}
	out, err := NewIO(db, "chr1", 0).Load()
	if err != nil {
		tst.Fatal(err)
	}
	if out == nil || out.Cursor != 12 || out.Final || len(out.Records) != 1 || out.Records[0] != in.Records[0] {
		tst.Error("Wrong checkpoint:", out)
	}
	if other, _ := NewIO(db, "chr2", 0).Load(); other != nil {
		tst.Error("Checkpoints of different strands are mixed")
	}
}

func TestSink(tst *testing.T) {
	db := openDB(tst)
	b, _ := genes.NewBuilder(4)
	d, _ := b.RegisterHeader("acc", bio.MustParseProtein("DAPW"), genes.KindAccumulator,
		accumulator.Parser{Transmitter: neuro.Dopamine})

	var c genes.Collector
	sink := NewSink(NewIO(db, "chr1", 0), &Data{Name: "chr1"}, &c)
	err := sink.Express(genes.Product{
		Gene:     d,
		Start:    4,
		Consumed: 8,
		Record:   &accumulator.Accumulator{Transmitter: neuro.Dopamine, BuildupRate: 4},
	})
	if err != nil {
		tst.Fatal(err)
	}
	if len(c.Products) != 1 {
		tst.Error("Product was not passed on")
	}

	data, err := NewIO(db, "chr1", 0).Load()
	if err != nil || data == nil {
		tst.Fatal("Checkpoint was not saved:", err)
	}
	if data.Cursor != 12 || data.Final || len(data.Records) != 1 {
		tst.Error("Wrong checkpoint:", data)
	}
	if r := data.Records[0]; r.Label != "acc" || r.Kind != "accumulator" || r.Value != "<Accumulator dopamine: level=0 rate=4>" {
		tst.Error("Wrong record:", r)
	}

	if err := sink.Finish(20); err != nil {
		tst.Fatal(err)
	}
	data, _ = NewIO(db, "chr1", 0).Load()
	if !data.Final || data.Cursor != 20 {
		tst.Error("Checkpoint is not final:", data)
	}
}

func TestOld(tst *testing.T) {
	io := NewIO(nil, "chr1", 3600)
	if !io.Old() {
		tst.Error("Checkpoint which was never saved should be old")
	}
	io.SetNow()
	if io.Old() {
		tst.Error("Checkpoint should not be old right after saving")
	}
}
