package main

import (
	"testing"

	"github.com/taigrr/facet/pkg/config"
)

func TestParseVec(t *testing.T) {
	tests := []struct {
		in       string
		expected config.Vec
		wantErr  bool
	}{
		{"0,0,-1", config.Vec{Z: -1}, false},
		{" 1.5, 2 ,3e1", config.Vec{X: 1.5, Y: 2, Z: 30}, false},
		{"1,2", config.Vec{}, true},
		{"1,2,3,4", config.Vec{}, true},
		{"a,b,c", config.Vec{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseVec(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseVec(%q) error = %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("parseVec(%q) = %+v, want %+v", tc.in, got, tc.expected)
			}
		})
	}
}
