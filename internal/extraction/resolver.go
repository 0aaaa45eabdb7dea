package extraction

import (
	"strings"

	"bolextract/internal/domain"
)

// selectedMarker is emitted for a checked selection element.
const selectedMarker = "[X] "

// Resolution is the output of Resolve.
type Resolution struct {
	Forms *domain.ResolvedKV
	Lines []string
}

// blockIndex holds the lookups built from one pass over the graph.
type blockIndex struct {
	byID   map[string]*domain.Block
	keys   []*domain.Block
	values map[string]*domain.Block
	lines  []string
}

func indexBlocks(blocks []domain.Block) *blockIndex {
	idx := &blockIndex{
		byID:   make(map[string]*domain.Block, len(blocks)),
		values: make(map[string]*domain.Block),
		lines:  []string{},
	}
	for i := range blocks {
		b := &blocks[i]
		idx.byID[b.ID] = b
		switch b.Type {
		case domain.BlockTypeKeyValueSet:
			if b.IsKey() {
				idx.keys = append(idx.keys, b)
			} else {
				idx.values[b.ID] = b
			}
		case domain.BlockTypeLine:
			idx.lines = append(idx.lines, b.Text)
		}
	}
	return idx
}

// Resolve builds the key/value text mapping and the line sequence for a block graph.
// Keys with no VALUE edge, or whose key or value text is empty, are skipped.
// A later key with the same text overwrites an earlier one.
func Resolve(blocks []domain.Block) *Resolution {
	idx := indexBlocks(blocks)
	forms := domain.NewResolvedKV()

	for _, keyBlock := range idx.keys {
		key := idx.text(keyBlock)

		var value string
		for _, rel := range keyBlock.Relationships {
			if rel.Type != domain.RelationshipTypeValue {
				continue
			}
			for _, id := range rel.IDs {
				if valueBlock, ok := idx.values[id]; ok {
					value = idx.text(valueBlock)
				}
			}
		}

		if key != "" && value != "" {
			forms.Set(key, value)
		}
	}

	return &Resolution{Forms: forms, Lines: idx.lines}
}

// text concatenates the WORD and selected SELECTION_ELEMENT children of b.
// Only direct children are visited.
func (idx *blockIndex) text(b *domain.Block) string {
	var sb strings.Builder
	for _, rel := range b.Relationships {
		if rel.Type != domain.RelationshipTypeChild {
			continue
		}
		for _, id := range rel.IDs {
			child, ok := idx.byID[id]
			if !ok {
				continue
			}
			switch child.Type {
			case domain.BlockTypeWord:
				sb.WriteString(child.Text)
				sb.WriteByte(' ')
			case domain.BlockTypeSelectionElement:
				if child.SelectionStatus == domain.SelectionStatusSelected {
					sb.WriteString(selectedMarker)
				}
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
