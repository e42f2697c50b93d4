package huffman

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var propertyTexts = []string{
	"a",
	"aaab",
	"zzzz",
	"abcabcabc",
	"hello world",
	"mississippi",
	"abracadabra",
	"the quick brown fox jumps over the lazy dog",
	"héllo, wörld! ☃☃☃",
	"aaaaaaaabbbbccd",
}

func TestDeriveCodes(t *testing.T) {
	type testRow struct {
		name   string
		text   string
		expect CodeMap
	}

	testData := [...]testRow{
		{name: "empty", text: "", expect: CodeMap{}},
		{name: "single", text: "zzzz", expect: CodeMap{'z': "0"}},
		{name: "aaab", text: "aaab", expect: CodeMap{'a': "0", 'b': "1"}},
		{name: "tie", text: "abcabcabc", expect: CodeMap{'a': "01", 'b': "00", 'c': "1"}},
		{name: "mississippi", text: "mississippi", expect: CodeMap{'i': "00", 'm': "011", 'p': "010", 's': "1"}},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := DeriveCodes(Build(Analyze(row.text)))
			if diff := cmp.Diff(row.expect, actual); diff != "" {
				t.Errorf("wrong codes (-expect +actual):\n%s", diff)
			}
		})
	}
}

func TestCodeMap_Dump(t *testing.T) {
	expectDump := strings.Join([]string{
		"CodeMap{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode('a') = \"0011\"\n",
		"\tEncode('b') = \"0010\"\n",
		"\tEncode('c') = \"011\"\n",
		"\tEncode('d') = \"010\"\n",
		"\tEncode('e') = \"000\"\n",
		"\tEncode('f') = \"1\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = DeriveCodes(Build(Analyze(makeTestText()))).Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestCodeMap_IsPrefixFree(t *testing.T) {
	for _, text := range propertyTexts {
		codes := DeriveCodes(Build(Analyze(text)))
		if !codes.IsPrefixFree() {
			t.Errorf("%q: code map is not prefix-free: %v", text, codes.Sorted())
		}
		for a, ca := range codes {
			for b, cb := range codes {
				if a != b && ca.IsPrefixOf(cb) {
					t.Errorf("%q: code %s for %s prefixes code %s for %s", text, ca, a, cb, b)
				}
			}
		}
	}

	broken := CodeMap{'a': "0", 'b': "01", 'c': "1"}
	if broken.IsPrefixFree() {
		t.Errorf("expected %v to be reported as not prefix-free", broken.Sorted())
	}
	duplicate := CodeMap{'a': "10", 'b': "10"}
	if duplicate.IsPrefixFree() {
		t.Errorf("expected %v to be reported as not prefix-free", duplicate.Sorted())
	}
}

func TestDeriveCodes_LengthOrdering(t *testing.T) {
	for _, text := range propertyTexts {
		freqs := Analyze(text)
		codes := DeriveCodes(Build(freqs))
		for a, fa := range freqs {
			for b, fb := range freqs {
				if fa > fb && codes[a].Len() > codes[b].Len() {
					t.Errorf("%q: %s (freq %g) has code %s, longer than %s (freq %g) with code %s",
						text, a, fa, codes[a], b, fb, codes[b])
				}
			}
		}
	}
}

func TestDeriveCodes_Deterministic(t *testing.T) {
	for _, text := range propertyTexts {
		first := DeriveCodes(Build(Analyze(text)))
		for i := 0; i < 10; i++ {
			again := DeriveCodes(Build(Analyze(text)))
			if diff := cmp.Diff(first, again); diff != "" {
				t.Fatalf("%q: codes changed between builds (-first +again):\n%s", text, diff)
			}
		}
	}
}

func TestEncode(t *testing.T) {
	type testRow struct {
		text   string
		expect string
	}

	testData := [...]testRow{
		{text: "", expect: ""},
		{text: "aaab", expect: "0001"},
		{text: "zzzz", expect: "0000"},
		{text: "abcabcabc", expect: "010010100101001"},
		{text: "mississippi", expect: "011001100110001001000"},
		{text: "hello world", expect: "11011101010010001100001101010000"},
	}
	for _, row := range testData {
		t.Run(row.text, func(t *testing.T) {
			actual, err := Encode(row.text, DeriveCodes(Build(Analyze(row.text))))
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestEncode_LookupError(t *testing.T) {
	codes := DeriveCodes(Build(Analyze("aaab")))
	out, err := Encode("abca", codes)
	if err == nil {
		t.Fatalf("expected error, got output %q", out)
	}
	if out != "" {
		t.Errorf("expected no partial output, got %q", out)
	}
	if !errors.Is(err, ErrNoCode) {
		t.Errorf("expected ErrNoCode, got %v", err)
	}

	var lookupErr *LookupError
	if !errors.As(err, &lookupErr) {
		t.Fatalf("expected *LookupError, got %T", err)
	}
	if lookupErr.Symbol != 'c' || lookupErr.Offset != 2 {
		t.Errorf("expected symbol 'c' at offset 2, got %s at offset %d", lookupErr.Symbol, lookupErr.Offset)
	}

	expectMessage := "huffman: no code for symbol 'c' at offset 2"
	if actualMessage := err.Error(); expectMessage != actualMessage {
		t.Errorf("wrong message:\n\texpect: %s\n\tactual: %s", expectMessage, actualMessage)
	}
}
