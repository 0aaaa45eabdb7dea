package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Block is a node in the document-analysis graph returned by the provider.
type Block struct {
	ID              string          `json:"id"`
	Type            BlockType       `json:"type"`
	EntityTypes     []EntityType    `json:"entity_types,omitempty"`
	Relationships   []Relationship  `json:"relationships,omitempty"`
	Text            string          `json:"text,omitempty"`
	SelectionStatus SelectionStatus `json:"selection_status,omitempty"`
}

// Relationship is an ordered edge list from one block to others.
type Relationship struct {
	Type RelationshipType `json:"type"`
	IDs  []string         `json:"ids"`
}

// IsKey reports whether the block is the KEY half of a form field.
func (b *Block) IsKey() bool {
	if b.Type != BlockTypeKeyValueSet {
		return false
	}
	for _, et := range b.EntityTypes {
		if et == EntityTypeKey {
			return true
		}
	}
	return false
}

// ResolvedKV maps key text to value text, preserving first-insertion order.
// Setting an existing key replaces its value in place.
type ResolvedKV struct {
	keys   []string
	values map[string]string
}

// KVEntry is a single key/value pair of a ResolvedKV.
type KVEntry struct {
	Key   string
	Value string
}

// NewResolvedKV creates an empty ResolvedKV.
func NewResolvedKV() *ResolvedKV {
	return &ResolvedKV{values: make(map[string]string)}
}

// Set stores value under key. The zero value is ready to use.
func (kv *ResolvedKV) Set(key, value string) {
	if kv.values == nil {
		kv.values = make(map[string]string)
	}
	if _, ok := kv.values[key]; !ok {
		kv.keys = append(kv.keys, key)
	}
	kv.values[key] = value
}

// Get returns the value stored under key.
func (kv *ResolvedKV) Get(key string) (string, bool) {
	if kv == nil {
		return "", false
	}
	v, ok := kv.values[key]
	return v, ok
}

// Len returns the number of entries.
func (kv *ResolvedKV) Len() int {
	if kv == nil {
		return 0
	}
	return len(kv.keys)
}

// Entries returns the pairs in insertion order.
func (kv *ResolvedKV) Entries() []KVEntry {
	if kv == nil {
		return nil
	}
	entries := make([]KVEntry, 0, len(kv.keys))
	for _, k := range kv.keys {
		entries = append(entries, KVEntry{Key: k, Value: kv.values[k]})
	}
	return entries
}

// MarshalJSON encodes the pairs as a JSON object in insertion order.
func (kv *ResolvedKV) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range kv.Entries() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping member order.
func (kv *ResolvedKV) UnmarshalJSON(data []byte) error {
	kv.keys = nil
	kv.values = make(map[string]string)
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("resolved kv: expected object, got %v", tok)
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := tok.(string)
		var value string
		if err := dec.Decode(&value); err != nil {
			return err
		}
		kv.Set(key, value)
	}
	_, err = dec.Token()
	return err
}

// CanonicalRecord holds the fixed shipping fields. Nil means no match was found.
type CanonicalRecord struct {
	BOLNumber   *string `json:"bol_number"`
	Shipper     *string `json:"shipper"`
	Consignee   *string `json:"consignee"`
	Carrier     *string `json:"carrier"`
	Weight      *string `json:"weight"`
	Date        *string `json:"date"`
	Origin      *string `json:"origin"`
	Destination *string `json:"destination"`
}

// CanonicalField names one slot of CanonicalRecord.
type CanonicalField string

const (
	FieldBOLNumber   CanonicalField = "bol_number"
	FieldShipper     CanonicalField = "shipper"
	FieldConsignee   CanonicalField = "consignee"
	FieldCarrier     CanonicalField = "carrier"
	FieldWeight      CanonicalField = "weight"
	FieldDate        CanonicalField = "date"
	FieldOrigin      CanonicalField = "origin"
	FieldDestination CanonicalField = "destination"
)

// CanonicalFields lists every canonical field in output order.
var CanonicalFields = []CanonicalField{
	FieldBOLNumber,
	FieldShipper,
	FieldConsignee,
	FieldCarrier,
	FieldWeight,
	FieldDate,
	FieldOrigin,
	FieldDestination,
}

// Slot returns a pointer to the record slot for field, or nil for an unknown field.
func (r *CanonicalRecord) Slot(field CanonicalField) **string {
	switch field {
	case FieldBOLNumber:
		return &r.BOLNumber
	case FieldShipper:
		return &r.Shipper
	case FieldConsignee:
		return &r.Consignee
	case FieldCarrier:
		return &r.Carrier
	case FieldWeight:
		return &r.Weight
	case FieldDate:
		return &r.Date
	case FieldOrigin:
		return &r.Origin
	case FieldDestination:
		return &r.Destination
	default:
		return nil
	}
}

// Value returns the field's value and whether it is present.
func (r *CanonicalRecord) Value(field CanonicalField) (string, bool) {
	slot := r.Slot(field)
	if slot == nil || *slot == nil {
		return "", false
	}
	return **slot, true
}

// ExtractionStatusSuccess is the status reported for a completed extraction.
const ExtractionStatusSuccess = "success"

// Extraction is the response body for a processed document: diagnostic lines,
// raw form pairs, and the canonical fields inlined at the top level.
type Extraction struct {
	Status   string      `json:"status"`
	Data     []string    `json:"data"`
	RawForms *ResolvedKV `json:"raw_forms"`
	CanonicalRecord
}

// ExtractionMeta describes a processed document for logging and exports.
type ExtractionMeta struct {
	ID          uuid.UUID `json:"id"`
	Source      string    `json:"source"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	BlockCount  int       `json:"block_count"`
	ProcessedAt time.Time `json:"processed_at"`
}

// ExtractionResult pairs an Extraction with its metadata.
type ExtractionResult struct {
	Meta       ExtractionMeta
	Extraction *Extraction
}
