package xlsxparse

import "testing"

func TestParseCellRef(t *testing.T) {
	tests := []struct {
		ref     string
		col     int
		row     int
		wantOk  bool
	}{
		{"A1", 0, 0, true},
		{"B12", 1, 11, true},
		{"Z1", 25, 0, true},
		{"AA1", 26, 0, true},
		{"", 0, 0, false},
		{"A", 0, 0, false},
		{"12", 0, 0, false},
		{"A0", 0, 0, false},
	}
	for _, tt := range tests {
		col, row, ok := parseCellRef(tt.ref)
		if ok != tt.wantOk {
			t.Errorf("parseCellRef(%q) ok = %v, want %v", tt.ref, ok, tt.wantOk)
			continue
		}
		if !ok {
			continue
		}
		if col != tt.col || row != tt.row {
			t.Errorf("parseCellRef(%q) = (%d, %d), want (%d, %d)", tt.ref, col, row, tt.col, tt.row)
		}
	}
}

func TestColLetterRoundTrip(t *testing.T) {
	for _, col := range []int{0, 1, 25, 26, 27, 51, 52, 701, 702} {
		letters := colIndexToLetter(col)
		back := colLetterToIndex(letters)
		if back != col {
			t.Errorf("round trip for col %d: letters=%q, back=%d", col, letters, back)
		}
	}
}

func TestParseRangeRef(t *testing.T) {
	tests := []struct {
		ref                    string
		c1, r1, c2, r2         int
		wantOk                 bool
	}{
		{"A1:C5", 0, 0, 2, 4, true},
		{"C5:A1", 0, 0, 2, 4, true}, // endpoints normalized regardless of order
		{"B2", 1, 1, 1, 1, true},
		{"not-a-ref", 0, 0, 0, 0, false},
		{"A1:", 0, 0, 0, 0, false},
	}
	for _, tt := range tests {
		c1, r1, c2, r2, ok := parseRangeRef(tt.ref)
		if ok != tt.wantOk {
			t.Errorf("parseRangeRef(%q) ok = %v, want %v", tt.ref, ok, tt.wantOk)
			continue
		}
		if !ok {
			continue
		}
		if c1 != tt.c1 || r1 != tt.r1 || c2 != tt.c2 || r2 != tt.r2 {
			t.Errorf("parseRangeRef(%q) = (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				tt.ref, c1, r1, c2, r2, tt.c1, tt.r1, tt.c2, tt.r2)
		}
	}
}
