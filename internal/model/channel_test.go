package model

import (
	"encoding/json"
	"testing"
)

func TestTagCountMarshalsAsPair(t *testing.T) {
	got, err := json.Marshal(TagCount{Tag: "go", Count: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != `["go",7]` {
		t.Errorf("got %s, want [\"go\",7]", got)
	}
}

func TestTagCountUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TagCount
		wantErr bool
	}{
		{"valid pair", `["go",7]`, TagCount{Tag: "go", Count: 7}, false},
		{"wrong arity", `["go"]`, TagCount{}, true},
		{"not an array", `{"tag":"go"}`, TagCount{}, true},
		{"wrong element types", `[7,"go"]`, TagCount{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got TagCount
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestTagCountRoundTripInsideAnalysis(t *testing.T) {
	a := ChannelAnalysis{
		ChannelID: "UC123",
		TopTags:   []TagCount{{Tag: "go", Count: 3}, {Tag: "api", Count: 1}},
	}

	data, err := json.Marshal(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var back ChannelAnalysis
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(back.TopTags) != 2 || back.TopTags[0] != a.TopTags[0] || back.TopTags[1] != a.TopTags[1] {
		t.Errorf("got %+v, want %+v", back.TopTags, a.TopTags)
	}
}
