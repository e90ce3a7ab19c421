package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// AnswerKind discriminates the shapes a submitted answer can take.
// Short-answer, coding and fill-blank questions submit text; choice
// questions submit an option letter; true/false submits a boolean;
// anything richer rides along as structured JSON.
type AnswerKind string

const (
	AnswerText       AnswerKind = "text"
	AnswerChoice     AnswerKind = "choice"
	AnswerBoolean    AnswerKind = "boolean"
	AnswerStructured AnswerKind = "structured"
)

// AnswerValue is a tagged union over the answer shapes. The zero value
// is an empty text answer.
type AnswerValue struct {
	Kind       AnswerKind
	Text       string
	Choice     string
	Bool       bool
	Structured json.RawMessage
}

func TextAnswer(s string) AnswerValue {
	return AnswerValue{Kind: AnswerText, Text: s}
}

func ChoiceAnswer(letter string) AnswerValue {
	return AnswerValue{Kind: AnswerChoice, Choice: letter}
}

func BoolAnswer(b bool) AnswerValue {
	return AnswerValue{Kind: AnswerBoolean, Bool: b}
}

func StructuredAnswer(raw json.RawMessage) AnswerValue {
	return AnswerValue{Kind: AnswerStructured, Structured: raw}
}

type answerEnvelope struct {
	Kind  AnswerKind      `json:"kind"`
	Value json.RawMessage `json:"value"`
}

func (a AnswerValue) MarshalJSON() ([]byte, error) {
	env := answerEnvelope{Kind: a.Kind}
	if env.Kind == "" {
		env.Kind = AnswerText
	}

	var err error
	switch env.Kind {
	case AnswerText:
		env.Value, err = json.Marshal(a.Text)
	case AnswerChoice:
		env.Value, err = json.Marshal(a.Choice)
	case AnswerBoolean:
		env.Value, err = json.Marshal(a.Bool)
	case AnswerStructured:
		if len(a.Structured) == 0 {
			env.Value = json.RawMessage("null")
		} else {
			env.Value = a.Structured
		}
	default:
		return nil, fmt.Errorf("model: unknown answer kind %q", a.Kind)
	}
	if err != nil {
		return nil, err
	}
	return json.Marshal(env)
}

func (a *AnswerValue) UnmarshalJSON(data []byte) error {
	var env answerEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}

	*a = AnswerValue{Kind: env.Kind}
	switch env.Kind {
	case AnswerText:
		return json.Unmarshal(env.Value, &a.Text)
	case AnswerChoice:
		return json.Unmarshal(env.Value, &a.Choice)
	case AnswerBoolean:
		return json.Unmarshal(env.Value, &a.Bool)
	case AnswerStructured:
		a.Structured = append(json.RawMessage(nil), env.Value...)
		return nil
	default:
		return fmt.Errorf("model: unknown answer kind %q", env.Kind)
	}
}

// String renders the answer the way grading compares it: text and
// choice as-is, booleans as "true"/"false", structured as raw JSON.
func (a AnswerValue) String() string {
	switch a.Kind {
	case AnswerChoice:
		return a.Choice
	case AnswerBoolean:
		return strconv.FormatBool(a.Bool)
	case AnswerStructured:
		return string(a.Structured)
	default:
		return a.Text
	}
}
