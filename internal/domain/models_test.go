package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bolextract/internal/domain"
)

func TestResolvedKV_SetKeepsFirstPosition(t *testing.T) {
	kv := domain.NewResolvedKV()
	kv.Set("b", "1")
	kv.Set("a", "2")
	kv.Set("b", "3")

	assert.Equal(t, []domain.KVEntry{{Key: "b", Value: "3"}, {Key: "a", Value: "2"}}, kv.Entries())
}

func TestResolvedKV_ZeroValueUsable(t *testing.T) {
	var kv domain.ResolvedKV
	kv.Set("Consignee", "Globex")
	kv.Set("Carrier", "Initech Freight")

	v, ok := kv.Get("Consignee")
	assert.True(t, ok)
	assert.Equal(t, "Globex", v)
	assert.Equal(t, 2, kv.Len())

	data, err := json.Marshal(&kv)
	require.NoError(t, err)
	assert.Equal(t, `{"Consignee":"Globex","Carrier":"Initech Freight"}`, string(data))
}

func TestResolvedKV_MarshalJSONOrdered(t *testing.T) {
	kv := domain.NewResolvedKV()
	kv.Set("Zeta", "last alphabetically")
	kv.Set("Alpha", `quote "x"`)

	body, err := json.Marshal(kv)
	require.NoError(t, err)
	assert.Equal(t, `{"Zeta":"last alphabetically","Alpha":"quote \"x\""}`, string(body))
}

func TestResolvedKV_UnmarshalJSONOrdered(t *testing.T) {
	var kv domain.ResolvedKV
	require.NoError(t, json.Unmarshal([]byte(`{"To:":"B","From:":"A"}`), &kv))

	entries := kv.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "To:", entries[0].Key)
	assert.Equal(t, "From:", entries[1].Key)
}

func TestResolvedKV_UnmarshalJSONRejectsArray(t *testing.T) {
	var kv domain.ResolvedKV
	assert.Error(t, json.Unmarshal([]byte(`["a"]`), &kv))
}

func TestResolvedKV_NilSafe(t *testing.T) {
	var kv *domain.ResolvedKV

	assert.Equal(t, 0, kv.Len())
	assert.Nil(t, kv.Entries())
	_, ok := kv.Get("x")
	assert.False(t, ok)
}

func TestBlock_IsKey(t *testing.T) {
	key := domain.Block{Type: domain.BlockTypeKeyValueSet, EntityTypes: []domain.EntityType{domain.EntityTypeKey}}
	value := domain.Block{Type: domain.BlockTypeKeyValueSet, EntityTypes: []domain.EntityType{domain.EntityTypeValue}}
	untagged := domain.Block{Type: domain.BlockTypeKeyValueSet}
	word := domain.Block{Type: domain.BlockTypeWord, EntityTypes: []domain.EntityType{domain.EntityTypeKey}}

	assert.True(t, key.IsKey())
	assert.False(t, value.IsKey())
	assert.False(t, untagged.IsKey())
	assert.False(t, word.IsKey())
}

func TestCanonicalRecord_Value(t *testing.T) {
	shipper := "ACME"
	rec := domain.CanonicalRecord{Shipper: &shipper}

	v, ok := rec.Value(domain.FieldShipper)
	assert.True(t, ok)
	assert.Equal(t, "ACME", v)

	_, ok = rec.Value(domain.FieldCarrier)
	assert.False(t, ok)

	_, ok = rec.Value("nonexistent")
	assert.False(t, ok)
}
