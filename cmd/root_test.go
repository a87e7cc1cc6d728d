package cmd

import (
	"reflect"
	"testing"
)

func TestSplitNames(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"two names", "nginx,mysql", []string{"nginx", "mysql"}},
		{"spaces trimmed", " nginx , mysql ", []string{"nginx", "mysql"}},
		{"empty entries dropped", "nginx,,mysql,", []string{"nginx", "mysql"}},
		{"single", "sshd", []string{"sshd"}},
		{"empty", "", nil},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := splitNames(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitNames(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
