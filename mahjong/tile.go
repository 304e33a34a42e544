package mahjong

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

type Tile int32

// 静态表：最后一个 rune -> 颜色
var lastRuneToColor = map[rune]EColor{
	'万': ColorCharacter,
	'条': ColorBamboo,
	'筒': ColorDot,
}

var colorMarkers = [ColorEnd]string{"万", "条", "筒"}

func MakeTile(color EColor, point int) Tile {
	return Tile((int(color)<<8 | (point << 4) | 1))
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) IsValid() bool {
	if t <= 0 {
		return false
	}
	c, p := t.Info()
	return c >= ColorBegin && c < ColorEnd && p >= 0 && p < PointCount
}

// Index 返回 [0,27) 的规范下标，花色序*9+点数
func (t Tile) Index() int {
	return int(t.Color())*PointCount + t.Point()
}

func TileFromIndex(index int) Tile {
	return MakeTile(EColor(index/PointCount), index%PointCount)
}

func (t Tile) Is258() bool {
	return t.IsValid() && t.Point()%3 == 1
}

func (t Tile) Is19() bool {
	return t.IsValid() && (t.Point() == 0 || t.Point() == PointCount-1)
}

func (t Tile) Name() string {
	c, p := t.Info()
	if c < ColorBegin || c >= ColorEnd {
		return ""
	}
	return strconv.Itoa(p+1) + colorMarkers[c]
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

// ParseTile 解析单张牌名，如 5万/1条/9筒，与 Name 严格互逆
func ParseTile(name string) (Tile, error) {
	if name == "" {
		return TileNull, fmt.Errorf("%w: empty", ErrInvalidTileFormat)
	}
	r, size := utf8.DecodeLastRuneInString(name)
	color, ok := lastRuneToColor[r]
	if !ok {
		return TileNull, fmt.Errorf("%w: %q", ErrInvalidTileFormat, name)
	}
	prefix := name[:len(name)-size]
	num, err := strconv.Atoi(prefix)
	if err != nil || num < 1 || num > PointCount {
		return TileNull, fmt.Errorf("%w: %q", ErrInvalidTileFormat, name)
	}
	return MakeTile(color, num-1), nil
}

// ParseTiles 解析逗号分隔的牌名列表
func ParseTiles(names string) ([]Tile, error) {
	if names == "" {
		return nil, nil
	}
	parts := strings.Split(names, ",")
	res := make([]Tile, len(parts))
	for i, name := range parts {
		t, err := ParseTile(strings.TrimSpace(name))
		if err != nil {
			return nil, err
		}
		res[i] = t
	}
	return res, nil
}

func MakeTiles(t Tile, count int) []Tile {
	if count <= 0 {
		return []Tile{}
	}
	res := make([]Tile, count)
	for i := range res {
		res[i] = t
	}
	return res
}
