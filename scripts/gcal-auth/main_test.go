package main

import "testing"

func TestExtractCode(t *testing.T) {
	const state = "3f1c9a52-7d1e-4b8e-9c57-0a4de2b1f6aa"

	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "4/0AbCd\n", want: "4/0AbCd"},
		{in: "http://localhost:8080/oauth2callback?code=4%2F0AbCd&scope=calendar&state=" + state, want: "4/0AbCd"},
		{in: "http://localhost:8080/oauth2callback?code=4%2F0AbCd&state=other", wantErr: true},
		{in: "http://localhost:8080/oauth2callback?code=4%2F0AbCd", wantErr: true},
		{in: "http://localhost:8080/oauth2callback?error=access_denied&state=" + state, wantErr: true},
		{in: "   ", wantErr: true},
	}

	for _, tt := range tests {
		got, err := extractCode(tt.in, state)
		if (err != nil) != tt.wantErr {
			t.Errorf("extractCode(%q): unexpected error %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("extractCode(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}
