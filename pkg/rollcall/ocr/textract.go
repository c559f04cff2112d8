package ocr

import (
	"encoding/json"
	"fmt"
	"io"
)

// Textract block types recognized by the decoder. Other block types (LINE,
// PAGE, ...) carry no table structure and are ignored.
const (
	blockWord      = "WORD"
	blockSelection = "SELECTION_ELEMENT"
	blockCell      = "CELL"
	blockTable     = "TABLE"

	selectionSelected = "SELECTED"
	relationshipChild = "CHILD"
)

type textractRelationship struct {
	Type string   `json:"Type"`
	IDs  []string `json:"Ids"`
}

type textractBlock struct {
	ID              string                 `json:"Id"`
	BlockType       string                 `json:"BlockType"`
	Text            string                 `json:"Text"`
	SelectionStatus string                 `json:"SelectionStatus"`
	RowIndex        int                    `json:"RowIndex"`
	ColumnIndex     int                    `json:"ColumnIndex"`
	Relationships   []textractRelationship `json:"Relationships"`
}

type textractResponse struct {
	Blocks []textractBlock `json:"Blocks"`
}

// DecodeTextract reads an AnalyzeDocument-style JSON response and converts
// its blocks into regions, preserving input order.
func DecodeTextract(r io.Reader) ([]Region, error) {
	var resp textractResponse
	if err := json.NewDecoder(r).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode textract response: %w", err)
	}

	var regions []Region
	for _, blk := range resp.Blocks {
		region := Region{ID: blk.ID}

		switch blk.BlockType {
		case blockWord:
			region.Kind = KindWord
			region.Text = blk.Text
		case blockSelection:
			region.Kind = KindSelectionMark
			region.Selected = blk.SelectionStatus == selectionSelected
		case blockCell:
			region.Kind = KindCell
			region.RowIndex = blk.RowIndex
			region.ColumnIndex = blk.ColumnIndex
			region.ChildIDs = childIDs(blk.Relationships)
		case blockTable:
			region.Kind = KindTable
			region.ChildIDs = childIDs(blk.Relationships)
		default:
			continue
		}

		regions = append(regions, region)
	}
	return regions, nil
}

func childIDs(rels []textractRelationship) []string {
	var ids []string
	for _, rel := range rels {
		if rel.Type != relationshipChild {
			continue
		}
		ids = append(ids, rel.IDs...)
	}
	return ids
}
