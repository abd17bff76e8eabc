package domain

import (
	"encoding/json"
	"testing"
)

func TestValueOf(t *testing.T) {
	tests := []struct {
		name       string
		keys       []string
		wantString string
		wantJSON   string
	}{
		{
			name:       "Flat Leaf",
			keys:       []string{"green"},
			wantString: "green",
			wantJSON:   `"green"`,
		},
		{
			name:       "One Level Of Descent",
			keys:       []string{"red", "walk"},
			wantString: "red.walk",
			wantJSON:   `{"red":"walk"}`,
		},
		{
			name:       "Deep Descent",
			keys:       []string{"a", "b", "c"},
			wantString: "a.b.c",
			wantJSON:   `{"a":{"b":"c"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ValueOf(tt.keys...)
			if got := v.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
			data, err := json.Marshal(v)
			if err != nil {
				t.Fatalf("Marshal failed: %v", err)
			}
			if string(data) != tt.wantJSON {
				t.Errorf("JSON = %s, want %s", data, tt.wantJSON)
			}
		})
	}
}

func TestDestinationJSON(t *testing.T) {
	d := Destination{State: ValueOf("red", "flashing")}
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"state":{"red":"flashing"}}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}

func TestTransitionSet(t *testing.T) {
	set := NewTransitionSet()
	set.Add("B_EVENT", Destination{State: Leaf("one")})
	set.Add("A_EVENT", Destination{State: Leaf("two")})
	// First-seen wins: a later add for the same event is ignored.
	set.Add("B_EVENT", Destination{State: Leaf("shadowed")})

	if got := set.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}

	events := set.Events()
	if events[0] != "B_EVENT" || events[1] != "A_EVENT" {
		t.Errorf("Events() = %v, want insertion order [B_EVENT A_EVENT]", events)
	}

	if d, _ := set.Get("B_EVENT"); d.State != Leaf("one") {
		t.Errorf("Get(B_EVENT) = %v, want the first value", d.State)
	}

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"B_EVENT":{"state":"one"},"A_EVENT":{"state":"two"}}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s (insertion order preserved)", data, want)
	}
}

func TestStepJSON(t *testing.T) {
	data, err := json.Marshal(Step{FromState: "red.walk", Event: "PED_COUNTDOWN"})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	want := `{"fromState":"red.walk","event":"PED_COUNTDOWN"}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}
