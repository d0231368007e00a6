package genes

import (
	"errors"
	"testing"

	"github.com/op/go-logging"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/promoter"
)

func init() {
	logging.SetLevel(logging.ERROR, "genes")
}

type testRecord struct{}

func (testRecord) Kind() Kind { return KindAccumulator }

var nopParser = ParserFunc(func(body []bio.AminoAcid) (Record, int, error) {
	return testRecord{}, len(body), nil
})

func TestBuilder(tst *testing.T) {
	b, err := NewBuilder(4)
	if err != nil {
		tst.Fatal(err)
	}
	d1 := b.MustRegister("first", promoter.IdentityOf("first"), KindAccumulator, nopParser)
	d2, err := b.RegisterHeader("second", bio.MustParseProtein("DAPW"), KindFormula, nopParser)
	if err != nil {
		tst.Fatal(err)
	}
	r := b.Build()

	if r.Len() != 2 || r.PromoterSize() != 4 {
		tst.Fatal("Wrong registry:", r.Len(), r.PromoterSize())
	}
	all := r.All()
	if all[0] != d1 || all[1] != d2 || d1.Index() != 0 || d2.Index() != 1 {
		tst.Error("Registration order is not preserved")
	}
	if len(d1.Header) != 4 {
		tst.Error("Wrong header length:", d1.Header)
	}
	exp := promoter.Header(promoter.IdentityOf("first"), 4)
	if !sameHeader(d1.Header, exp) {
		tst.Error("Header differs from the derived one:", d1.Header, exp)
	}
	if d, ok := r.Lookup("second"); !ok || d != d2 {
		tst.Error("Lookup failed")
	}
	if _, ok := r.Lookup("third"); ok {
		tst.Error("Lookup of an unknown label succeeded")
	}

	// modifying the returned slice does not affect the registry
	all[0] = nil
	if r.At(0) != d1 {
		tst.Error("Registry was modified through All()")
	}
}

func TestBuilderSealed(tst *testing.T) {
	b, _ := NewBuilder(4)
	b.Build()
	_, err := b.Register("late", promoter.Identity{}, KindAccumulator, nopParser)
	if !errors.Is(err, ErrSealed) {
		tst.Error("Expected ErrSealed, got", err)
	}
}

func TestBuilderErrors(tst *testing.T) {
	if _, err := NewBuilder(0); !errors.Is(err, ErrPromoterSize) {
		tst.Error("Expected ErrPromoterSize, got", err)
	}
	b, _ := NewBuilder(4)
	if _, err := b.Register("", promoter.Identity{}, KindAccumulator, nopParser); !errors.Is(err, ErrNoLabel) {
		tst.Error("Expected ErrNoLabel, got", err)
	}
	if _, err := b.Register("x", promoter.Identity{}, KindAccumulator, nil); !errors.Is(err, ErrNoParser) {
		tst.Error("Expected ErrNoParser, got", err)
	}
	if _, err := b.RegisterHeader("x", bio.MustParseProtein("DAP"), KindAccumulator, nopParser); !errors.Is(err, ErrHeaderSize) {
		tst.Error("Expected ErrHeaderSize, got", err)
	}
}

func TestSharedHeader(tst *testing.T) {
	b, _ := NewBuilder(4)
	b.MustRegister("a", promoter.Identity{}, KindAccumulator, nopParser)
	b.MustRegister("b", promoter.Identity{}, KindAccumulator, nopParser)
	if r := b.Build(); r.Len() != 2 {
		tst.Error("Shared headers should be allowed")
	}
}

func TestHeaderCopied(tst *testing.T) {
	b, _ := NewBuilder(4)
	h := bio.MustParseProtein("DAPW")
	d, _ := b.RegisterHeader("x", h, KindAccumulator, nopParser)
	h[0] = bio.V
	if d.Header[0] != bio.D {
		tst.Error("Header was not copied")
	}
}

func TestFindStop(tst *testing.T) {
	cases := []struct {
		body  string
		width int
		idx   int
		found bool
	}{
		{"RRRR****", 4, 4, true},
		{"****", 4, 0, true},
		{"RRRR***", 4, 0, false},
		{"RRRR***RR", 4, 0, false},
		{"RRRR****RR", 4, 4, true},
		{"R**R*****", 4, 4, true},
		{"", 4, 0, false},
		{"RR**", 2, 2, true},
		{"RR**", 0, 0, false},
	}
	for _, c := range cases {
		idx, found := FindStop(bio.MustParseProtein(c.body), c.width)
		if idx != c.idx || found != c.found {
			tst.Errorf("FindStop(%s, %d)=%d,%v, expected %d,%v", c.body, c.width, idx, found, c.idx, c.found)
		}
	}
}

func TestCollector(tst *testing.T) {
	var c Collector
	var s Sink = &c
	if err := s.Express(Product{Start: 4}); err != nil {
		tst.Fatal(err)
	}
	if len(c.Products) != 1 || c.Products[0].Start != 4 {
		tst.Error("Product was not collected")
	}
}
