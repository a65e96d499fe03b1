package vendor_order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/HJantango/wild-octave-august-sub004/internal/domain"
)

func TestPackNormalizer_Normalize(t *testing.T) {
	n := NewPackNormalizer([]domain.PackSizeRule{
		{ItemPattern: "cake", PackSize: 12, UnitName: "slices"},
		{ItemPattern: "carrot cake", PackSize: 8, UnitName: "slices"},
		{ItemPattern: "muffin", PackSize: 6, UnitName: "muffins"},
		{ItemPattern: "broken", PackSize: 0, UnitName: "x"},
		{ItemPattern: "Mini Muffin", PackSize: 24, UnitName: "minis"},
	})

	tests := []struct {
		name       string
		item       string
		raw        int
		wantPack   int
		wantUnits  int
		wantPieces int
		wantMatch  bool
	}{
		{name: "rounds up to one pack", item: "Chocolate Cake", raw: 10, wantPack: 12, wantUnits: 1, wantPieces: 12, wantMatch: true},
		{name: "longest pattern wins", item: "Carrot Cake Slice", raw: 10, wantPack: 8, wantUnits: 2, wantPieces: 16, wantMatch: true},
		{name: "exact match is case insensitive", item: "MINI MUFFIN", raw: 1, wantPack: 24, wantUnits: 1, wantPieces: 24, wantMatch: true},
		{name: "exact multiple", item: "Blueberry Muffin", raw: 12, wantPack: 6, wantUnits: 2, wantPieces: 12, wantMatch: true},
		{name: "zero raw", item: "Chocolate Cake", raw: 0, wantPack: 12, wantUnits: 0, wantPieces: 0, wantMatch: true},
		{name: "invalid rule ignored", item: "Broken Biscuit", raw: 5, wantPack: 1, wantUnits: 5, wantPieces: 5},
		{name: "unmatched passes through", item: "Oat Milk", raw: 7, wantPack: 1, wantUnits: 7, wantPieces: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := n.Normalize(tt.item, tt.raw)
			assert.Equal(t, tt.wantPack, got.PackSize)
			assert.Equal(t, tt.wantUnits, got.Units)
			assert.Equal(t, tt.wantPieces, got.Pieces)
			assert.Equal(t, tt.wantMatch, got.Matched)
			assert.GreaterOrEqual(t, got.Pieces, tt.raw)
		})
	}
}

func TestPackNormalizer_EqualLengthKeepsDeclaredOrder(t *testing.T) {
	n := NewPackNormalizer([]domain.PackSizeRule{
		{ItemPattern: "tart", PackSize: 4},
		{ItemPattern: "pear", PackSize: 9},
	})
	rule, ok := n.Match("pear tart")
	assert.True(t, ok)
	assert.Equal(t, 4, rule.PackSize)
}
