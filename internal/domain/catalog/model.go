package catalog

import (
	"encoding/json"
	"strings"
	"time"
)

// Architecture metadata as published by the upstream catalog.
type Architecture struct {
	Modality        string   `json:"modality"` // "text->text" / "text+image->text"
	InputModalities []string `json:"input_modalities,omitempty"`
}

// Pricing holds per-token costs as decimal strings, exactly as the
// upstream publishes them. Absent or malformed values are treated as zero
// by the normalizer, never rejected.
type Pricing struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// Model is one validated upstream catalog record. ID is the only required
// field; everything else defaults rather than failing, to tolerate
// heterogeneous upstream data quality.
type Model struct {
	ID                  string       `json:"id"` // "<provider>/<name>"
	Name                string       `json:"name"`
	Description         string       `json:"description,omitempty"`
	ContextLength       int          `json:"context_length"`
	Architecture        Architecture `json:"architecture"`
	Pricing             *Pricing     `json:"pricing,omitempty"`
	SupportedParameters []string     `json:"supported_parameters,omitempty"`
	Created             int64        `json:"created,omitempty"` // epoch seconds, 0 when absent
}

// UnmarshalJSON applies defaulting rules: a missing display name falls
// back to the model ID.
func (m *Model) UnmarshalJSON(data []byte) error {
	type alias Model
	aux := alias{}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*m = Model(aux)
	if m.Name == "" {
		m.Name = m.ID
	}
	return nil
}

// Provider returns the substring of ID before the first slash, or the
// whole ID when no slash is present.
func (m *Model) Provider() string {
	if idx := strings.Index(m.ID, "/"); idx >= 0 {
		return m.ID[:idx]
	}
	return m.ID
}

// CreatedAt returns the creation time, zero when the upstream omitted it.
func (m *Model) CreatedAt() time.Time {
	if m.Created == 0 {
		return time.Time{}
	}
	return time.Unix(m.Created, 0).UTC()
}

// Snapshot is one full catalog fetch with its provenance.
type Snapshot struct {
	Models    []Model
	FetchedAt time.Time
	Source    string
}

// ModalityBucket groups models by their architecture modality string.
type ModalityBucket string

const (
	ModalityAll        ModalityBucket = "all"        // no filter
	ModalityText       ModalityBucket = "text"       // modality string has no "+"
	ModalityMultimodal ModalityBucket = "multimodal" // modality string contains "+"
	ModalityImage      ModalityBucket = "image"      // modality string contains "image"
)

// InBucket reports whether the model's modality string falls into the
// bucket. Unknown bucket names behave like ModalityText, matching the
// ranking endpoints where anything that is not "multimodal" or "all"
// selects single-modality models.
func (m *Model) InBucket(bucket ModalityBucket) bool {
	switch bucket {
	case ModalityAll, "":
		return true
	case ModalityMultimodal:
		return strings.Contains(m.Architecture.Modality, "+")
	case ModalityImage:
		return strings.Contains(m.Architecture.Modality, "image")
	default:
		return !strings.Contains(m.Architecture.Modality, "+")
	}
}
