package main

import (
	"fmt"
	"io"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"bitbucket.org/Davydov/ribo/checkpoint"
	"bitbucket.org/Davydov/ribo/genes"
	"bitbucket.org/Davydov/ribo/ribosome"
)

// scan expresses genes of all the strands in a file and prints them.
func scan(reg *genes.Registry, fn string) *ScanSummary {
	strands, err := readStrandsFile(fn, *format, *dnaStart)
	if err != nil {
		log.Fatal(err)
	}

	var db *bolt.DB
	if *checkpointF != "" {
		db, err = bolt.Open(*checkpointF, 0600, &bolt.Options{Timeout: 1 * time.Second})
		if err != nil {
			log.Fatal("Error opening checkpoint database:", err)
		}
		defer db.Close()
	}

	summary := &ScanSummary{PromoterSize: reg.PromoterSize()}
	s := ribosome.NewScanner(reg)
	ngenes := 0
	for _, st := range strands {
		ss, err := scanStrand(s, db, st, *checkpointDelay, os.Stdout)
		if err != nil {
			log.Errorf("Error expressing %s: %v", st.name, err)
		}
		ngenes += len(ss.Genes)
		summary.Strands = append(summary.Strands, ss)
	}
	log.Noticef("Expressed %d genes from %d strands", ngenes, len(strands))
	return summary
}

// scanStrand expresses genes of a single strand, resuming from the
// checkpoint if there is one. Decoded genes are printed to w.
func scanStrand(s *ribosome.Scanner, db *bolt.DB, st strand, delay float64, w io.Writer) (ss StrandSummary, err error) {
	ss = StrandSummary{Name: st.name, Length: len(st.aas)}

	cio := checkpoint.NewIO(db, st.name, delay)
	data, err := cio.Load()
	if err != nil {
		ss.Error = err.Error()
		return
	}
	if data == nil {
		data = &checkpoint.Data{Name: st.name}
	} else {
		ss.Resumed = true
	}
	if data.Final {
		ss.Cursor = data.Cursor
		ss.Genes = data.Records
		return
	}

	printer := genes.SinkFunc(func(p genes.Product) error {
		_, err := fmt.Fprintf(w, "%s\t%d\t%s\t%v\n", st.name, p.Start, p.Gene.Label, p.Record)
		return err
	})
	sink := checkpoint.NewSink(cio, data, printer)

	ss.Cursor, err = s.ScanFrom(st.aas, data.Cursor, sink)
	ss.Genes = sink.Data().Records
	if err != nil {
		ss.Error = err.Error()
		if serr := cio.Save(data); serr != nil {
			log.Error("Error saving checkpoint:", serr)
		}
		return
	}
	log.Infof("%s: %d genes, stopped at %d of %d", st.name, len(data.Records), ss.Cursor, len(st.aas))
	err = sink.Finish(ss.Cursor)
	return
}
