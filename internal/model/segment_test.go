package model

import "testing"

func TestParseSegment(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Segment
		wantErr bool
	}{
		{name: "Sedan", raw: "SEDAN", want: SegmentSedan},
		{name: "SUV", raw: "SUV", want: SegmentSUV},
		{name: "Pickup", raw: "PICKUP", want: SegmentPickup},
		{name: "Lowercase is rejected", raw: "sedan", wantErr: true},
		{name: "Unknown tag", raw: "HATCHBACK", wantErr: true},
		{name: "Empty string", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSegment(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSegmentIsValid(t *testing.T) {
	for _, s := range Segments() {
		if !s.IsValid() {
			t.Errorf("Expected %q to be valid", s)
		}
	}
	if Segment("TRUCKZILLA").IsValid() {
		t.Error("Expected unknown segment to be invalid")
	}
}
