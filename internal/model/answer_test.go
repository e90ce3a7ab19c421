package model

import (
	"encoding/json"
	"testing"
)

func TestAnswerValueRoundTrip(t *testing.T) {
	cases := []struct {
		name   string
		answer AnswerValue
	}{
		{"text", TextAnswer("a binary search tree")},
		{"choice", ChoiceAnswer("B")},
		{"boolean true", BoolAnswer(true)},
		{"boolean false", BoolAnswer(false)},
		{"structured", StructuredAnswer(json.RawMessage(`{"code":"fmt.Println(42)","lang":"go"}`))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(tc.answer)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			var decoded AnswerValue
			if err := json.Unmarshal(data, &decoded); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if decoded.Kind != tc.answer.Kind {
				t.Errorf("expected kind %q, got %q", tc.answer.Kind, decoded.Kind)
			}
			if decoded.String() != tc.answer.String() {
				t.Errorf("expected %q, got %q", tc.answer.String(), decoded.String())
			}
		})
	}
}

func TestAnswerValueZeroIsText(t *testing.T) {
	var zero AnswerValue

	data, err := json.Marshal(zero)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded AnswerValue
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Kind != AnswerText || decoded.Text != "" {
		t.Errorf("expected empty text answer, got %+v", decoded)
	}
}

func TestAnswerValueUnknownKind(t *testing.T) {
	var decoded AnswerValue
	err := json.Unmarshal([]byte(`{"kind":"emoji","value":"🤔"}`), &decoded)
	if err == nil {
		t.Error("expected error for unknown answer kind")
	}
}

func TestAnswerValueString(t *testing.T) {
	if got := BoolAnswer(true).String(); got != "true" {
		t.Errorf("expected \"true\", got %q", got)
	}
	if got := ChoiceAnswer("C").String(); got != "C" {
		t.Errorf("expected \"C\", got %q", got)
	}
	if got := TextAnswer("42").String(); got != "42" {
		t.Errorf("expected \"42\", got %q", got)
	}
}
