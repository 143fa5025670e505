package session

import "testing"

func TestParseConfirm(t *testing.T) {
	tests := []struct {
		input   string
		want    bool
		wantErr bool
	}{
		{"y", true, false},
		{"Y", true, false},
		{" y ", true, false},
		{"n", false, false},
		{"N", false, false},
		{"", false, true},
		{"yes", false, true},
		{"no", false, true},
		{"maybe", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseConfirm(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseConfirm(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseConfirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatSelection(t *testing.T) {
	tests := []struct {
		name    string
		indices []int
		want    string
	}{
		{"empty", nil, "none"},
		{"single", []int{2}, "3"},
		{"small selection lists every page", []int{0, 2, 4}, "1, 3, 5"},
		{"ten pages still listed", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, "1, 2, 3, 4, 5, 6, 7, 8, 9, 10"},
		{"large selection summarized", []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, "11 pages: 1-11 and others"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSelection(tt.indices); got != tt.want {
				t.Errorf("FormatSelection(%v) = %q, want %q", tt.indices, got, tt.want)
			}
		})
	}
}
