package accumulator

import (
	"testing"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/genes"
	"bitbucket.org/Davydov/ribo/neuro"
)

func TestDecode(tst *testing.T) {
	cases := []struct {
		body     string
		rate     uint32
		consumed int
	}{
		{"RRRR****", 4, 8},
		{"RRRR", 4, 4},
		{"RRRR***", 4, 7},
		{"RRRR***RR", 6, 9},
		{"RRRR****RR", 4, 8},
		{"", 0, 0},
		{"****", 0, 4},
		{"AV**C****", 23, 9},
	}
	for _, c := range cases {
		rate, consumed := Decode(bio.MustParseProtein(c.body))
		if rate != c.rate || consumed != c.consumed {
			tst.Errorf("Decode(%s)=%d,%d, expected %d,%d", c.body, rate, consumed, c.rate, c.consumed)
		}
	}
}

func TestRoundTrip(tst *testing.T) {
	codes := bio.MustParseProtein("ARNDCQEGHILKMFPSTWYV")
	var sum uint32
	for _, aa := range codes {
		sum += aa.Code()
	}
	body := append(append([]bio.AminoAcid{}, codes...), bio.StopRun(4)...)
	body = append(body, bio.MustParseProtein("WWW")...)

	rate, consumed := Decode(body)
	if rate != sum || consumed != len(codes)+4 {
		tst.Errorf("Decode=%d,%d, expected %d,%d", rate, consumed, sum, len(codes)+4)
	}
}

func TestEncode(tst *testing.T) {
	for _, rate := range []uint32{0, 1, 18, 19, 20, 38, 100, 1234} {
		body := Encode(rate)
		r, consumed := Decode(body)
		if r != rate {
			tst.Errorf("Encode(%d) decodes to %d", rate, r)
		}
		if consumed != len(body) {
			tst.Errorf("Encode(%d): consumed %d of %d", rate, consumed, len(body))
		}
	}
	if s := bio.ProteinString(Encode(40)); s != "VVN****" {
		tst.Error("Wrong encoding:", s)
	}
}

func TestParser(tst *testing.T) {
	var p genes.Parser = Parser{Transmitter: neuro.Serotonin}
	rec, consumed, err := p.Parse(bio.MustParseProtein("RRRR****RR"))
	if err != nil {
		tst.Fatal(err)
	}
	if consumed != 8 || rec.Kind() != genes.KindAccumulator {
		tst.Error("Wrong parser output:", rec, consumed)
	}
	acc := rec.(*Accumulator)
	if acc.Transmitter != neuro.Serotonin || acc.BuildupRate != 4 || acc.Level != 0 {
		tst.Error("Wrong accumulator:", acc)
	}
	acc.Tick()
	acc.Tick()
	if acc.Level != 8 {
		tst.Error("Wrong level after two ticks:", acc.Level)
	}
}
