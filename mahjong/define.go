package mahjong

// 手牌风格类型
const (
	HandNone       EHandStyle = iota // 非胡牌
	HandNormal                       // 平胡型(四组加将)
	HandSevenPairs                   // 七对
)

type EHandStyle int

const (
	TileNull Tile  = -1
	SeatNull int32 = -1
)

const (
	NP4 = 4
	NP3 = 3
	NP2 = 2
)

const (
	TileCountInitBanker = 14
	TileCountInitNormal = 13
)

type EColor int

// 血战玩法只用三门数牌
const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorEnd
	ColorBegin = ColorCharacter
)

const (
	PointCount     = 9
	TileIndexCount = int(ColorEnd) * PointCount // 27
	MaxSameCount   = 4
)

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypePon
	GroupTypeZhiKon // 直杠
	GroupTypeAnKon  // 暗杠
	GroupTypeBuKon  // 补杠(碰后加杠)
)

func (g EGroupType) IsKon() bool {
	return g == GroupTypeZhiKon || g == GroupTypeAnKon || g == GroupTypeBuKon
}

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}
