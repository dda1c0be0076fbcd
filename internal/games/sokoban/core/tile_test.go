package core

import "testing"

func TestTileCharRoundTrip(t *testing.T) {
	seen := make(map[byte]Tile)
	for _, tile := range Tiles() {
		c := tile.Char()
		if prev, dup := seen[c]; dup {
			t.Fatalf("%v and %v share character %q", prev, tile, c)
		}
		seen[c] = tile

		got, ok := ParseTile(c)
		if !ok {
			t.Errorf("ParseTile(%q) not recognized", c)
			continue
		}
		if got != tile {
			t.Errorf("ParseTile(%q) = %v, expected %v", c, got, tile)
		}
	}
	if len(seen) != 14 {
		t.Errorf("expected 14 tiles, got %d", len(seen))
	}
}

func TestTileCanonicalChars(t *testing.T) {
	tests := []struct {
		tile Tile
		char byte
	}{
		{TilePlayer, '@'},
		{TileGround, '.'},
		{TileWall, '#'},
		{TileCrate, 'A'},
		{TileGroundOutline, 'a'},
		{TileHoleCrate, '1'},
		{TileHoleGround, 'H'},
		{TileLockedCrate, 'L'},
		{TileCoin, 'C'},
		{TileOutline, 'o'},
		{TileDimCrate, 'D'},
		{TileDimHoleCrate, 'd'},
		{TileFallingCrate, 'F'},
		{TileLockedHoleCrate, 'l'},
	}

	for _, tc := range tests {
		t.Run(tc.tile.String(), func(t *testing.T) {
			if got := tc.tile.Char(); got != tc.char {
				t.Errorf("Char() = %q, expected %q", got, tc.char)
			}
		})
	}
}

func TestParseTileUnknown(t *testing.T) {
	for _, c := range []byte{' ', 'x', '$', '*', '+', 0} {
		if _, ok := ParseTile(c); ok {
			t.Errorf("ParseTile(%q) should not be recognized", c)
		}
	}
}

func TestTilePredicates(t *testing.T) {
	crates := map[Tile]bool{TileCrate: true, TileHoleCrate: true}
	blockers := map[Tile]bool{TileWall: true, TileLockedCrate: true, TileCrate: true, TileHoleCrate: true}

	for _, tile := range Tiles() {
		if tile.IsCrate() != crates[tile] {
			t.Errorf("%v.IsCrate() = %v, expected %v", tile, tile.IsCrate(), crates[tile])
		}
		if tile.BlocksPush() != blockers[tile] {
			t.Errorf("%v.BlocksPush() = %v, expected %v", tile, tile.BlocksPush(), blockers[tile])
		}
	}
}

func TestZeroTileIsGround(t *testing.T) {
	var tile Tile
	if tile != TileGround {
		t.Errorf("zero Tile = %v, expected Ground", tile)
	}
}
