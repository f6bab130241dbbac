package analytics

import (
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Hello World", "Hello World"},
		{"entity removed", "Tom &amp; Jerry", "Tom Jerry"},
		{"numeric entity", "a&#160;b", "a b"},
		{"digits and punctuation", "  go1.22 -- rocks!! ", "go rocks"},
		{"only symbols", "123 !!! ???", ""},
		{"empty", "", ""},
		{"unterminated ampersand", "fish & chips", "fish chips"},
		{"non ascii letters", "café naïve", "caf na ve"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Tom &amp; Jerry",
		"  <p>x &lt; y</p>  ",
		"a&b;c&;d",
		"mixed\tCASE\nlines\r\n",
		"&amp;amp;",
		"",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_EntityNotCounted(t *testing.T) {
	table := FrequencyTable{}
	CountInto(Normalize("Tom &amp; Jerry"), table, nil, DefaultDelimiters, true)

	want := FrequencyTable{"tom": 1, "jerry": 1}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("table = %v, want %v", table, want)
	}
	if _, ok := table["amp"]; ok {
		t.Error("entity name leaked into table")
	}
}

func TestSplit(t *testing.T) {
	got := Split("a,,b. c/d\te\r\nf", DefaultDelimiters)
	want := []string{"a", "b", "c", "d", "e", "f"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Split() = %v, want %v", got, want)
	}

	if got := Split("", DefaultDelimiters); len(got) != 0 {
		t.Errorf("Split(\"\") = %v, want empty", got)
	}
}

func TestCountInto_CaseFoldsAndCounts(t *testing.T) {
	table := FrequencyTable{}
	CountInto("Hello hello World", table, nil, DefaultDelimiters, true)

	want := FrequencyTable{"hello": 2, "world": 1}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("table = %v, want %v", table, want)
	}
}

func TestCountInto_EmptyTextIsNoop(t *testing.T) {
	table := FrequencyTable{"go": 3}
	CountInto("", table, nil, DefaultDelimiters, true)

	if len(table) != 1 || table["go"] != 3 {
		t.Errorf("table changed on empty input: %v", table)
	}
}

func TestCountInto_ExistingKeyAlwaysIncrements(t *testing.T) {
	stop := StopwordSet{"the": {}}

	for _, allowNew := range []bool{true, false} {
		table := FrequencyTable{"the": 4}
		CountInto("The", table, stop, DefaultDelimiters, allowNew)
		if table["the"] != 5 {
			t.Errorf("allowNewKeys=%v: count = %d, want 5", allowNew, table["the"])
		}
	}
}

func TestCountInto_NoNewKeysWhenDisallowed(t *testing.T) {
	table := FrequencyTable{}
	CountInto("alpha beta gamma alpha", table, nil, DefaultDelimiters, false)

	if len(table) != 0 {
		t.Errorf("table = %v, want empty", table)
	}
}

func TestCountInto_StopwordsBlockInsertion(t *testing.T) {
	stop := NewStopwordSet("The, AND", DefaultDelimiters)
	table := FrequencyTable{}
	CountInto("the cat and THE dog", table, stop, DefaultDelimiters, true)

	want := FrequencyTable{"cat": 1, "dog": 1}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("table = %v, want %v", table, want)
	}
}

func TestCountInto_CustomDelimiters(t *testing.T) {
	table := FrequencyTable{}
	CountInto("a;b c", table, nil, []rune{';'}, true)

	want := FrequencyTable{"a": 1, "b c": 1}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("table = %v, want %v", table, want)
	}
}

func TestNewStopwordSet(t *testing.T) {
	if set := NewStopwordSet("", DefaultDelimiters); set != nil {
		t.Errorf("empty raw: got %v, want nil", set)
	}
	if set := NewStopwordSet(" , . ", DefaultDelimiters); set != nil {
		t.Errorf("delimiters only: got %v, want nil", set)
	}

	set := NewStopwordSet("A an\tTHE,a", DefaultDelimiters)
	want := StopwordSet{"a": {}, "an": {}, "the": {}}
	if !reflect.DeepEqual(set, want) {
		t.Errorf("set = %v, want %v", set, want)
	}

	var nilSet StopwordSet
	if nilSet.Contains("a") {
		t.Error("nil set reported membership")
	}
}

func TestDefaultStopwords(t *testing.T) {
	set := NewStopwordSet(DefaultStopwords(), DefaultDelimiters)
	for _, w := range []string{"the", "and", "website"} {
		if !set.Contains(w) {
			t.Errorf("default stopwords missing %q", w)
		}
	}
	if strings.Contains(DefaultStopwords(), "  ") {
		t.Error("default stopwords contain empty entries")
	}
}

func TestParseDelimiters(t *testing.T) {
	if got := ParseDelimiters(""); !reflect.DeepEqual(got, DefaultDelimiters) {
		t.Errorf("ParseDelimiters(\"\") = %q, want defaults", got)
	}

	got := ParseDelimiters(`;;,\t`)
	want := []rune{';', ',', '\t'}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseDelimiters() = %q, want %q", got, want)
	}
}
