package formula

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"bitbucket.org/Davydov/ribo/bio"
	"bitbucket.org/Davydov/ribo/genes"
)

// pairs maps amino acid pairs to formula tokens.
var pairs = []struct {
	pair  string
	token string
}{
	{"AA", "("},
	{"AP", ")"},
	{"AF", "*"},
	{"AM", "/"},
	{"AK", "^"},
	{"AS", "+"},
	{"AW", "-"},
	{"AT", "%"},
	{"AY", "<"},
	{"AV", ">"},
	{"AL", "=="},
	{"AH", ">="},
	{"AD", "<="},
	{"AN", "!="},
	{"AR", "!"},
	{"AI", "sin"},
	{"AC", "cos"},
	{"AE", "ln"},
	{"AQ", "log"},
	{"AG", "log2"},
	{"PA", "0"},
	{"PP", "1"},
	{"PF", "2"},
	{"PM", "3"},
	{"PK", "4"},
	{"PS", "5"},
	{"PW", "6"},
	{"PT", "7"},
	{"PY", "8"},
	{"PV", "9"},
	{"FA", "dopamine"},
	{"FP", "serotonin"},
	{"FF", "norepinephrine"},
}

type pair [2]bio.AminoAcid

var (
	tokenOf = map[pair]string{}
	pairOf  = map[string]pair{}
	// byLength holds tokens sorted longest first for greedy encoding.
	byLength []string
)

func init() {
	for _, p := range pairs {
		aa := bio.MustParseProtein(p.pair)
		key := pair{aa[0], aa[1]}
		tokenOf[key] = p.token
		pairOf[p.token] = key
		byLength = append(byLength, p.token)
	}
	sort.SliceStable(byLength, func(i, j int) bool {
		return len(byLength[i]) > len(byLength[j])
	})
}

// Token returns the token for a pair of amino acids. Pairs without
// a token return an empty string.
func Token(a, b bio.AminoAcid) string {
	return tokenOf[pair{a, b}]
}

// Tokenize reads the payload in non-overlapping pairs and concatenates
// their tokens. A trailing odd amino acid is ignored.
func Tokenize(payload []bio.AminoAcid) string {
	var sb strings.Builder
	for i := 0; i+1 < len(payload); i += 2 {
		sb.WriteString(Token(payload[i], payload[i+1]))
	}
	return sb.String()
}

// End finds the end of the formula payload in body. The payload ends
// before the first run of width Unknown amino acids, which is consumed
// as well. Without such a run the last amino acid of body is excluded
// from the payload, while the whole body is consumed.
func End(body []bio.AminoAcid, width int) (end, consumed int) {
	if k, ok := genes.FindStop(body, width); ok {
		return k, k + width
	}
	end = len(body) - 1
	if end < 0 {
		end = 0
	}
	return end, len(body)
}

// Encode converts a formula to a gene body terminated by a stop run of
// width Unknown amino acids. Tokens are matched greedily, longest
// first; white space is skipped.
func Encode(src string, width int) ([]bio.AminoAcid, error) {
	var body []bio.AminoAcid
	rest := src
	for {
		rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
		if rest == "" {
			break
		}
		found := false
		for _, tok := range byLength {
			if strings.HasPrefix(rest, tok) {
				p := pairOf[tok]
				body = append(body, p[0], p[1])
				rest = rest[len(tok):]
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: cannot encode %q at %d", ErrMalformed, src, len(src)-len(rest))
		}
	}
	return append(body, bio.StopRun(width)...), nil
}
