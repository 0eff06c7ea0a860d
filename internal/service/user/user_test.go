package user

import (
	"errors"
	"testing"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "international format passes through",
			raw:  "+5491123456789",
			want: "+5491123456789",
		},
		{
			name: "national format gets country code",
			raw:  "011 2345-6789",
			want: "+541123456789",
		},
		{
			name:    "garbage is rejected",
			raw:     "not-a-phone",
			wantErr: true,
		},
		{
			name:    "too short is rejected",
			raw:     "123",
			wantErr: true,
		},
		{
			name:    "empty is rejected",
			raw:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NormalizePhone(%q) expected error, got %q", tt.raw, got)
				}
				if !errors.Is(err, ErrInvalidPhone) {
					t.Errorf("expected ErrInvalidPhone, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NormalizePhone(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
