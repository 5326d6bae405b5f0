package defaults

import "testing"

func TestMapBlocks(t *testing.T) {
	config := Config{
		"footer": {
			{Title: "W3C", URL: "https://www.w3.org/"},
			{Title: "Search", URL: "https://www.google.com/"},
		},
	}

	blocks := NewMapper().MapBlocks(config)

	rows, ok := blocks["footer"]
	if !ok {
		t.Fatal("MapBlocks() dropped the footer block")
	}
	if len(rows) != 2 {
		t.Fatalf("footer has %d rows, want 2", len(rows))
	}
	if rows[0].Weight != 0 || rows[1].Weight != 1 {
		t.Errorf("weights = %d, %d; want ordinal 0, 1", rows[0].Weight, rows[1].Weight)
	}
	if !rows[0].Enabled || !rows[1].Enabled {
		t.Error("default rows should be enabled")
	}
}

func TestMapBlocksSkipsIncompleteRows(t *testing.T) {
	config := Config{
		"footer": {
			{Title: "", URL: "https://www.w3.org/"},
			{Title: "Search", URL: ""},
			{Title: "Kept", URL: "/kept"},
		},
	}

	blocks := NewMapper().MapBlocks(config)

	rows := blocks["footer"]
	if len(rows) != 1 || rows[0].Title != "Kept" {
		t.Errorf("MapBlocks() = %+v, want only the complete row", rows)
	}
}

func TestMapBlocksDropsEmptyBlocks(t *testing.T) {
	config := Config{
		"ghost": {
			{Title: "", URL: ""},
		},
	}

	blocks := NewMapper().MapBlocks(config)

	if _, ok := blocks["ghost"]; ok {
		t.Error("MapBlocks() kept a block with no usable rows")
	}
}
