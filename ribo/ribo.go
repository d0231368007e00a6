/*

Ribo expresses genes encoded in amino acid strands. Every strand is
scanned for gene headers; a gene body following a header is decoded
into a neurotransmitter accumulator or a formula over the
neurotransmitter levels.

The basic usage of ribo looks like this:

	ribo scan strands.txt

, this will read one strand per line and print decoded genes.

Genomes can be given as DNA in FASTA format; the first TATA box
delimited transcription unit of every sequence is translated:

	ribo --format dna scan genome.fst

Gene headers and their pairwise distances are listed by:

	ribo headers

To see all the commands and options run:

	ribo --help

*/
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribo/catalog"
	"bitbucket.org/Davydov/ribo/genes"
)

// These three variables are set during the compilation.
var githash = ""
var gitbranch = ""
var buildstamp = ""
var version = fmt.Sprintf("branch: %s, revision: %s, build time: %s", gitbranch, githash, buildstamp)

// Logger settings.
var log = logging.MustGetLogger("ribo")
var formatter = logging.MustStringFormatter(`%{message}`)

// command-line options
var (
	// application
	app = kingpin.New("ribo", "gene expression from amino acid strands").Version(version)

	// registry
	promoterSize = app.Flag("promoter", "gene header length in amino acids").Default(strconv.Itoa(genes.DefaultPromoterSize)).Int()

	// input
	format = app.Flag("format", "input format "+
		"(protein: one strand per line, "+
		"fasta: amino acid FASTA, "+
		"dna: DNA FASTA, TATA box delimited transcription units are translated)").
		Default("protein").Enum("protein", "fasta", "dna")
	dnaStart = app.Flag("dnastart", "genome position to start reading transcription units").Default("0").Int()

	// technical
	outLogF  = app.Flag("log", "write log to a file").String()
	logLevel = app.Flag("loglevel", "set loglevel "+
		"('critical', 'error', 'warning', 'notice', 'info', 'debug')").
		Default("notice").
		Enum("critical", "error", "warning", "notice", "info", "debug")

	// scan
	scanCmd         = app.Command("scan", "express genes of all the strands")
	scanFileName    = scanCmd.Arg("input", "input strands").Required().ExistingFile()
	checkpointF     = scanCmd.Flag("checkpoint", "checkpoint database, finished strands are skipped").String()
	checkpointDelay = scanCmd.Flag("checkpoint-seconds", "minimum interval between checkpoints").Default("60").Float64()
	jsonF           = scanCmd.Flag("json", "write json output to a file").String()

	// headers
	headersCmd = app.Command("headers", "list gene headers and their pairwise distances")

	// translate
	translateCmd      = app.Command("translate", "translate DNA FASTA to amino acid FASTA")
	translateFileName = translateCmd.Arg("input", "DNA FASTA").Required().ExistingFile()

	// encode
	encodeCmd   = app.Command("encode", "encode a gene as an amino acid strand")
	encodeLabel = encodeCmd.Arg("label", "gene label, see headers").Required().String()
	encodeValue = encodeCmd.Arg("value", "buildup rate or formula").Required().String()

	// eval
	evalCmd        = app.Command("eval", "evaluate a formula")
	evalFormula    = evalCmd.Arg("formula", "formula to evaluate").Required().String()
	dopamine       = evalCmd.Flag("dopamine", "dopamine level").Default("0").Int()
	serotonin      = evalCmd.Flag("serotonin", "serotonin level").Default("0").Int()
	norepinephrine = evalCmd.Flag("norepinephrine", "norepinephrine level").Default("0").Int()
	gate           = evalCmd.Flag("gate", "evaluate as an activation gate").Bool()

	// profile
	profileCmd      = app.Command("profile", "best header distance for every window")
	profileFileName = profileCmd.Arg("input", "input strands").Required().ExistingFile()
	profilePNG      = profileCmd.Flag("png", "plot the profile of the first strand to a file").String()
)

// registry builds the gene registry.
func registry() *genes.Registry {
	reg, err := catalog.Build(*promoterSize)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Registered %d genes, promoter size %d", reg.Len(), reg.PromoterSize())
	for _, d := range reg.All() {
		log.Debug(d)
	}
	return reg
}

func main() {
	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))

	// logging
	logging.SetFormatter(formatter)

	var backend *logging.LogBackend
	if *outLogF != "" {
		f, err := os.OpenFile(*outLogF, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			log.Fatal("Error creating log file:", err)
		}
		defer f.Close()
		backend = logging.NewLogBackend(f, "", 0)
	} else {
		backend = logging.NewLogBackend(os.Stderr, "", 0)
	}
	logging.SetBackend(backend)

	level, err := logging.LogLevel(*logLevel)
	if err != nil {
		log.Fatal(err)
	}
	for _, module := range []string{"ribo", "genes", "ribosome", "formula", "checkpoint"} {
		logging.SetLevel(level, module)
	}

	// print revision
	log.Info(version)

	// print commandline
	log.Info("Command line:", os.Args)

	startTime := time.Now()

	switch cmd {
	case scanCmd.FullCommand():
		summary := scan(registry(), *scanFileName)
		summary.Version = version
		summary.CommandLine = os.Args
		summary.TotalTime = time.Since(startTime).Seconds()
		log.Noticef("Running time: %v", time.Since(startTime))
		writeJSON(*jsonF, summary)
	case headersCmd.FullCommand():
		headers(os.Stdout, registry())
	case translateCmd.FullCommand():
		translate(*translateFileName)
	case encodeCmd.FullCommand():
		s, err := encode(registry(), *encodeLabel, *encodeValue)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(s)
	case evalCmd.FullCommand():
		res, err := eval(*evalFormula, *gate, *dopamine, *serotonin, *norepinephrine)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(res)
	case profileCmd.FullCommand():
		profile(registry(), *profileFileName, *profilePNG)
	}
}

// writeJSON writes v in json format to a file. Nothing is written if
// the file name is empty.
func writeJSON(fn string, v interface{}) {
	if fn == "" {
		return
	}
	j, err := json.Marshal(v)
	if err != nil {
		log.Error(err)
		return
	}
	log.Debug(string(j))
	f, err := os.Create(fn)
	if err != nil {
		log.Error("Error creating json output file:", err)
		return
	}
	if _, err := f.Write(j); err != nil {
		log.Error("Error writing json output file:", err)
	}
	if err := f.Close(); err != nil {
		log.Error("Error closing json output file:", err)
	}
}
