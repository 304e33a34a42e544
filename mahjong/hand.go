package mahjong

import "fmt"

// HandCounts 暗牌计数，下标为 Tile.Index
type HandCounts [TileIndexCount]int8

// TilesToCounts 将牌列表转为计数数组，同一张超过4张报错
func TilesToCounts(tiles []Tile) (HandCounts, error) {
	var counts HandCounts
	for _, t := range tiles {
		if !t.IsValid() {
			return counts, fmt.Errorf("%w: tile %d", ErrInvalidTileFormat, t)
		}
		i := t.Index()
		counts[i]++
		if counts[i] > MaxSameCount {
			return counts, fmt.Errorf("%w: %s", ErrTooManyCopies, t.Name())
		}
	}
	return counts, nil
}

// Tiles 按花色、点数升序展开
func (c *HandCounts) Tiles() []Tile {
	res := make([]Tile, 0, c.Sum())
	for i := range TileIndexCount {
		for range c[i] {
			res = append(res, TileFromIndex(i))
		}
	}
	return res
}

func (c *HandCounts) Sum() int {
	sum := 0
	for i := range TileIndexCount {
		sum += int(c[i])
	}
	return sum
}

// colorMask 返回出现过的花色位集
func (c *HandCounts) colorMask() int {
	mask := 0
	for i := range TileIndexCount {
		if c[i] > 0 {
			mask |= 1 << (i / PointCount)
		}
	}
	return mask
}

// Group 副露或暗杠，一组只有一种牌
type Group struct {
	Tile Tile
	Type EGroupType
	From int32 // 被碰/杠玩家的座位，自摸类为 SeatNull；补杠沿用碰的来源
}

func NewPonGroup(tile Tile, from int32) Group {
	return Group{Tile: tile, Type: GroupTypePon, From: from}
}

func NewKonGroup(tile Tile, from int32, konType EGroupType) Group {
	return Group{Tile: tile, Type: konType, From: from}
}

func (g Group) TileCount() int {
	if g.Type.IsKon() {
		return 4
	}
	return 3
}

func groupColorMask(groups []Group) int {
	mask := 0
	for _, g := range groups {
		mask |= 1 << (g.Tile.Index() / PointCount)
	}
	return mask
}

// Hand 单次评估的手牌快照，引擎不保留任何引用
type Hand struct {
	Counts    HandCounts
	Groups    []Group
	VoidColor EColor // 定缺花色，未定缺为 ColorUndefined
}

func NewHand(tiles []Tile, groups []Group, voidColor EColor) (*Hand, error) {
	counts, err := TilesToCounts(tiles)
	if err != nil {
		return nil, err
	}
	return NewHandFromCounts(counts, groups, voidColor)
}

func NewHandFromCounts(counts HandCounts, groups []Group, voidColor EColor) (*Hand, error) {
	for _, g := range groups {
		if !g.Tile.IsValid() {
			return nil, fmt.Errorf("%w: group tile %d", ErrInvalidTileFormat, g.Tile)
		}
		if int(counts[g.Tile.Index()])+g.TileCount() > MaxSameCount {
			return nil, fmt.Errorf("%w: %s", ErrTooManyCopies, g.Tile.Name())
		}
	}
	total := counts.Sum() + len(groups)*3
	if total < 1 || total > TileCountInitBanker {
		return nil, fmt.Errorf("%w: %d tiles", ErrMalformedHandSize, total)
	}
	return &Hand{Counts: counts, Groups: groups, VoidColor: voidColor}, nil
}

// tileTotal 暗牌加副露折算后的总张数，杠按3张折算
func (h *Hand) tileTotal() int {
	return h.Counts.Sum() + len(h.Groups)*3
}

// isRestSize 打出后的张数(3k+1)
func (h *Hand) isRestSize() bool {
	return h.tileTotal()%3 == 1
}

// isFullSize 摸牌后的张数(3k+2)
func (h *Hand) isFullSize() bool {
	return h.tileTotal()%3 == 2
}

func (h *Hand) colorMask() int {
	return h.Counts.colorMask() | groupColorMask(h.Groups)
}

// voidTileCount 暗牌中定缺花色的张数
func (h *Hand) voidTileCount() int {
	if h.VoidColor < ColorBegin || h.VoidColor >= ColorEnd {
		return 0
	}
	count := 0
	base := int(h.VoidColor) * PointCount
	for p := range PointCount {
		count += int(h.Counts[base+p])
	}
	return count
}

func (h *Hand) konCount() int {
	count := 0
	for _, g := range h.Groups {
		if g.Type.IsKon() {
			count++
		}
	}
	return count
}
