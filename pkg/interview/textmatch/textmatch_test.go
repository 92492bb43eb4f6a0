package textmatch

import "testing"

func TestTokenize(t *testing.T) {
	words := Tokenize("  The STERILE field\nmust stay dry ")
	want := []string{"the", "sterile", "field", "must", "stay", "dry"}
	if len(words) != len(want) {
		t.Fatalf("Tokenize() = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestMatchesKeyword(t *testing.T) {
	tests := []struct {
		name    string
		words   []string
		keyword string
		want    bool
	}{
		{"exact match", []string{"sterile"}, "sterile", true},
		{"word inside keyword", []string{"steril"}, "sterilization", true},
		{"keyword inside word", []string{"sterilization"}, "sterile", false},
		{"plural tolerated", []string{"gloves"}, "glove", true},
		{"short words ignored", []string{"a", "of", "it"}, "it", false},
		{"case insensitive keyword", []string{"sterile"}, "STERILE", true},
		{"no relation", []string{"pressure"}, "sterile", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesKeyword(tt.words, tt.keyword); got != tt.want {
				t.Errorf("MatchesKeyword(%v, %q) = %v, want %v", tt.words, tt.keyword, got, tt.want)
			}
		})
	}
}

func TestKeywordScore(t *testing.T) {
	words := Tokenize("Check the pressure gauge before sterilizing the instruments")

	score := KeywordScore(words, []string{"pressure", "gauge", "instrument", "temperature"})
	if score != 3 {
		t.Errorf("KeywordScore = %d, want 3", score)
	}

	if KeywordScore(words, nil) != 0 {
		t.Error("empty keyword set should score 0")
	}
}
