package pages

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxPages int
		want     []int
		wantErr  bool
	}{
		{
			name:     "all keyword",
			input:    "all",
			maxPages: 5,
			want:     []int{0, 1, 2, 3, 4},
		},
		{
			name:     "all keyword is case-insensitive",
			input:    "  ALL ",
			maxPages: 3,
			want:     []int{0, 1, 2},
		},
		{
			name:     "single page",
			input:    "3",
			maxPages: 5,
			want:     []int{2},
		},
		{
			name:     "comma-separated list",
			input:    "1,3,5",
			maxPages: 5,
			want:     []int{0, 2, 4},
		},
		{
			name:     "simple range",
			input:    "1-5",
			maxPages: 5,
			want:     []int{0, 1, 2, 3, 4},
		},
		{
			name:     "ranges combined with single pages",
			input:    "1-3,7,9-11",
			maxPages: 11,
			want:     []int{0, 1, 2, 6, 8, 9, 10},
		},
		{
			name:     "whitespace around tokens and separator",
			input:    " 1 , 3 - 4 ",
			maxPages: 5,
			want:     []int{0, 2, 3},
		},
		{
			name:     "duplicates are removed",
			input:    "2,1-3,2",
			maxPages: 5,
			want:     []int{0, 1, 2},
		},
		{
			name:     "empty tokens between commas are skipped",
			input:    "1,,3",
			maxPages: 5,
			want:     []int{0, 2},
		},
		{
			name:     "page zero is below range",
			input:    "0",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "page above range",
			input:    "6",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "reversed range",
			input:    "3-2",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "empty input",
			input:    "",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "only commas selects nothing",
			input:    ",,,",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "non-numeric token",
			input:    "1,two",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "one bad token rejects the whole input",
			input:    "1,2,99",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "range with extra separator",
			input:    "1-2-3",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "range with missing bound",
			input:    "-3",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "range end above page count",
			input:    "1-6",
			maxPages: 5,
			wantErr:  true,
		},
		{
			name:     "all is not combinable with other tokens",
			input:    "all,2",
			maxPages: 5,
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input, tt.maxPages)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q, %d) = %v, want error", tt.input, tt.maxPages, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q, %d) returned error: %v", tt.input, tt.maxPages, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q, %d) = %v, want %v", tt.input, tt.maxPages, got, tt.want)
			}
		})
	}
}

func TestParseIsDeterministic(t *testing.T) {
	const input = "9-11,1-3,7,2"

	first, err := Parse(input, 11)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	second, err := Parse(input, 11)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not deterministic: %v vs %v", first, second)
	}
	for i := 1; i < len(first); i++ {
		if first[i-1] >= first[i] {
			t.Errorf("result not strictly ascending at %d: %v", i, first)
		}
	}
}
