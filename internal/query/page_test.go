package query

import "testing"

func TestPageNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{"zero value gets defaults", Page{}, Page{Skip: 0, Take: 20}},
		{"valid passes through", Page{Skip: 40, Take: 50}, Page{Skip: 40, Take: 50}},
		{"take too large clamps", Page{Take: 500}, Page{Take: 20}},
		{"negative skip resets", Page{Skip: -5, Take: 10}, Page{Skip: 0, Take: 10}},
		{"max take allowed", Page{Take: 100}, Page{Take: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Normalize(); got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
