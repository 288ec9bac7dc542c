package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	RoadmapKey = "akif_dev_roadmap"
	NotesKey   = "akif_dev_personal_notes"
)

type RoadmapRecord struct {
	Learn    string `json:"learn"`
	Struggle string `json:"struggle"`
	NextStep string `json:"nextStep"`
}

type NoteEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
	Date string `json:"date"`
}

const roadmapSchema = `{
  "type": "object",
  "properties": {
    "learn": {"type": "string"},
    "struggle": {"type": "string"},
    "nextStep": {"type": "string"}
  }
}`

const notesSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id": {"type": "string"},
      "text": {"type": "string"},
      "date": {"type": "string"}
    }
  }
}`

var (
	roadmapValidator = jsonschema.MustCompileString("mindspace://roadmap.json", roadmapSchema)
	notesValidator   = jsonschema.MustCompileString("mindspace://notes.json", notesSchema)
)

func DecodeRoadmap(raw []byte) (RoadmapRecord, error) {
	if err := checkShape(roadmapValidator, raw); err != nil {
		return RoadmapRecord{}, fmt.Errorf("roadmap: %w", err)
	}
	record := RoadmapRecord{}
	if err := json.Unmarshal(raw, &record); err != nil {
		return RoadmapRecord{}, fmt.Errorf("decode roadmap: %w", err)
	}
	return record, nil
}

func DecodeNotes(raw []byte) ([]NoteEntry, error) {
	if err := checkShape(notesValidator, raw); err != nil {
		return nil, fmt.Errorf("notes: %w", err)
	}
	notes := []NoteEntry{}
	if err := json.Unmarshal(raw, &notes); err != nil {
		return nil, fmt.Errorf("decode notes: %w", err)
	}
	return notes, nil
}

func EncodeRoadmap(record RoadmapRecord) ([]byte, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("encode roadmap: %w", err)
	}
	return raw, nil
}

func EncodeNotes(notes []NoteEntry) ([]byte, error) {
	if notes == nil {
		notes = []NoteEntry{}
	}
	raw, err := json.Marshal(notes)
	if err != nil {
		return nil, fmt.Errorf("encode notes: %w", err)
	}
	return raw, nil
}

// checkShape parses raw as generic JSON and validates it. JSON null, which
// the browser writes for cleared keys, is rejected like any other mismatch.
func checkShape(schema *jsonschema.Schema, raw []byte) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return fmt.Errorf("empty payload")
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("malformed json: %w", err)
	}
	if dec.More() {
		return fmt.Errorf("trailing data after json value")
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("unexpected shape: %s", strings.TrimSpace(err.Error()))
	}
	return nil
}
