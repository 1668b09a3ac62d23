package kitchen

import (
	"errors"
	"testing"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		name, minutes string
		wantName      string
		wantMinutes   int
		wantErr       error
	}{
		{"rice", "20", "rice", 20, nil},
		{"  chicken ", " 5 ", "chicken", 5, nil},
		{"water", "0", "water", 0, nil},
		{"", "5", "", 0, ErrEmptyName},
		{"   ", "5", "", 0, ErrEmptyName},
		{"pasta", "", "", 0, ErrInvalidMinutes},
		{"pasta", "ten", "", 0, ErrInvalidMinutes},
		{"pasta", "2.5", "", 0, ErrInvalidMinutes},
		{"pasta", "-3", "", 0, ErrInvalidMinutes},
		{"stock", "100000", "stock", 100000, nil},
		{"stock", "100001", "", 0, ErrInvalidMinutes},
		{"stock", "153722867280912931", "", 0, ErrInvalidMinutes},
	}

	for _, tt := range tests {
		name, minutes, err := ParseItem(tt.name, tt.minutes)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseItem(%q, %q) error = %v, want %v", tt.name, tt.minutes, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseItem(%q, %q) unexpected error %v", tt.name, tt.minutes, err)
			continue
		}
		if name != tt.wantName || minutes != tt.wantMinutes {
			t.Errorf("ParseItem(%q, %q) = (%q, %d), want (%q, %d)", tt.name, tt.minutes, name, minutes, tt.wantName, tt.wantMinutes)
		}
	}
}

func TestParseItemSpec(t *testing.T) {
	name, minutes, err := ParseItemSpec("rice=20")
	if err != nil || name != "rice" || minutes != 20 {
		t.Errorf("ParseItemSpec(rice=20) = (%q, %d, %v)", name, minutes, err)
	}

	name, minutes, err = ParseItemSpec("a=b=3")
	if err != nil || name != "a=b" || minutes != 3 {
		t.Errorf("ParseItemSpec(a=b=3) = (%q, %d, %v)", name, minutes, err)
	}

	if _, _, err := ParseItemSpec("rice"); err == nil {
		t.Error("ParseItemSpec(rice) expected error")
	}
	if _, _, err := ParseItemSpec("=4"); !errors.Is(err, ErrEmptyName) {
		t.Errorf("ParseItemSpec(=4) error = %v, want ErrEmptyName", err)
	}
	if _, _, err := ParseItemSpec("rice=x"); !errors.Is(err, ErrInvalidMinutes) {
		t.Errorf("ParseItemSpec(rice=x) error = %v, want ErrInvalidMinutes", err)
	}
}
