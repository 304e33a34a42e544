package mahjong

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
)

// ErrNotWinningHand 对非胡牌手调用算番
var ErrNotWinningHand = errors.New("mahjong: not a winning hand")

// WinContext 胡牌时的场面信息，仅算番使用
type WinContext struct {
	ZiMo     bool // 自摸
	AfterKon bool // 杠后立即胡：自摸为杠上花，接炮为杠上炮
	QiangKon bool // 抢杠胡
	LastTile bool // 最后一张：自摸为妙手回春，接炮为海底捞月
}

// FanResult 算番结果
type FanResult struct {
	Multi    int64    // 最终倍数
	Base     string   // 底番番型名
	Patterns []string // 底番、场面加番与根
}

// FanPattern 番型：名称、倍数、判定与已计入的根数
// 表按倍数从高到低匹配，命中第一个即为底番
type FanPattern struct {
	Name      string
	Multi     int64
	PricedGen int // 该番型自身已包含的根数，算根时要扣除
	match     func(s *winShape) bool
}

// winShape 胡牌手的结构特征，算番前一次性求出
type winShape struct {
	style      EHandStyle
	oneSuit    bool
	quadPair   bool // 七对中含4张的牌
	genCount   int  // 含副露在内的4张同牌组数
	konNum     int
	allPon     bool // 对对胡拆分存在
	all258     bool
	all19      bool
	bareHand   bool // 四副露单钓将
	menQing    bool
	noTerminal bool
}

func newWinShape(h *Hand, style EHandStyle) *winShape {
	s := &winShape{style: style}
	s.oneSuit = bits.OnesCount(uint(h.colorMask())) == 1
	s.konNum = h.konCount()
	s.bareHand = len(h.Groups) == NP4 && h.Counts.Sum() == 2

	var all HandCounts
	copy(all[:], h.Counts[:])
	for _, g := range h.Groups {
		all[g.Tile.Index()] += int8(g.TileCount())
	}
	for i := range TileIndexCount {
		if all[i] == MaxSameCount {
			s.genCount++
		}
	}

	s.all258 = true
	s.noTerminal = true
	for i := range TileIndexCount {
		if all[i] == 0 {
			continue
		}
		t := TileFromIndex(i)
		if !t.Is258() {
			s.all258 = false
		}
		if t.Is19() {
			s.noTerminal = false
		}
	}

	s.menQing = true
	for _, g := range h.Groups {
		if g.Type != GroupTypeAnKon {
			s.menQing = false
		}
	}

	if style == HandSevenPairs {
		for i := range TileIndexCount {
			if h.Counts[i] == MaxSameCount {
				s.quadPair = true
			}
		}
		return s
	}

	work := h.Counts
	s.allPon = decomposeAllTriplets(&work)

	terminalGroups := true
	for _, g := range h.Groups {
		if !g.Tile.Is19() {
			terminalGroups = false
		}
	}
	if terminalGroups {
		work = h.Counts
		s.all19 = decomposeAllTerminal(&work, NP4-len(h.Groups), false)
	}
	return s
}

// Scorer 算番器，按规则生成番型表后只读复用
type Scorer struct {
	rule  *Rule
	table []FanPattern
}

func NewScorer(rule *Rule) *Scorer {
	if rule == nil {
		rule = DefaultRule()
	}
	s := &Scorer{rule: rule}
	s.table = s.buildTable()
	return s
}

func (s *Scorer) buildTable() []FanPattern {
	qidui := func(w *winShape) bool { return w.style == HandSevenPairs }
	normal := func(w *winShape) bool { return w.style == HandNormal }

	patterns := []FanPattern{
		{FanQingShiBaLuoHan, 256, 4, func(w *winShape) bool { return w.bareHand && w.konNum == NP4 && w.oneSuit }},
		{FanShiBaLuoHan, 64, 4, func(w *winShape) bool { return w.bareHand && w.konNum == NP4 }},
		{FanQingLongQiDui, 32, 1, func(w *winShape) bool { return qidui(w) && w.quadPair && w.oneSuit }},
		{FanQingQiDui, 16, 0, func(w *winShape) bool { return qidui(w) && w.oneSuit }},
		{FanQingYaoJiu, 16, 0, func(w *winShape) bool { return normal(w) && w.all19 && w.oneSuit }},
		{FanJiangJinGouDiao, 16, 0, func(w *winShape) bool { return w.bareHand && w.all258 }},
		{FanQingJinGouDiao, 16, 0, func(w *winShape) bool { return w.bareHand && w.oneSuit }},
		{FanLongQiDui, 16, 1, func(w *winShape) bool { return qidui(w) && w.quadPair }},
		{FanQingDui, 8, 0, func(w *winShape) bool { return normal(w) && w.allPon && w.oneSuit }},
		{FanJiangDui, 8, 0, func(w *winShape) bool { return normal(w) && w.allPon && w.all258 }},
		{FanDaiYaoJiu, 4, 0, func(w *winShape) bool { return normal(w) && w.all19 }},
		{FanQingYiSe, 4, 0, func(w *winShape) bool { return w.oneSuit }},
		{FanQiDui, 4, 0, qidui},
		{FanJinGouDiao, 4, 0, func(w *winShape) bool { return w.bareHand }},
		{FanDuiDuiHu, 2, 0, func(w *winShape) bool { return normal(w) && w.allPon }},
	}
	if s.rule.MenQingZhongZhang {
		patterns = append(patterns,
			FanPattern{FanMenQing, 2, 0, func(w *winShape) bool { return normal(w) && w.menQing }},
			FanPattern{FanDuanYaoJiu, 2, 0, func(w *winShape) bool { return w.noTerminal }},
		)
	}
	patterns = append(patterns, FanPattern{FanPingHu, 1, 0, func(w *winShape) bool { return true }})

	table := patterns[:0]
	for _, p := range patterns {
		p.Multi = s.rule.multiFor(p.Name, p.Multi)
		if p.Multi > 0 {
			table = append(table, p)
		}
	}
	// 倍数覆盖后重排，同倍数保持特殊在前
	sort.SliceStable(table, func(i, j int) bool { return table[i].Multi > table[j].Multi })
	return table
}

// Calc 算番：底番取表中第一个命中的番型，场面番独立翻倍，
// 根按底番已计入的数量扣除后再翻倍
func (s *Scorer) Calc(h *Hand, ctx *WinContext) (*FanResult, error) {
	style := CheckHuStyle(h.Counts, h.Groups, h.VoidColor)
	if style == HandNone {
		return nil, ErrNotWinningHand
	}
	if ctx == nil {
		ctx = &WinContext{}
	}

	shape := newWinShape(h, style)
	var base FanPattern
	for _, p := range s.table {
		if p.match(shape) {
			base = p
			break
		}
	}

	res := &FanResult{
		Multi:    base.Multi,
		Base:     base.Name,
		Patterns: []string{base.Name},
	}
	for _, bonus := range situationalFans(ctx) {
		res.Multi *= 2
		res.Patterns = append(res.Patterns, bonus)
	}

	if gen := shape.genCount - base.PricedGen; gen > 0 {
		res.Multi <<= uint(gen)
		res.Patterns = append(res.Patterns, fmt.Sprintf("%d根", gen))
	}

	if limit := s.rule.LimitMulti; limit > 0 && res.Multi > limit {
		res.Multi = limit
	}
	return res, nil
}

// situationalFans 场面加番，每项各翻一倍
func situationalFans(ctx *WinContext) []string {
	var fans []string
	if ctx.ZiMo {
		fans = append(fans, FanZiMo)
	}
	if ctx.AfterKon {
		if ctx.ZiMo {
			fans = append(fans, FanKonHua)
		} else {
			fans = append(fans, FanKonPao)
		}
	}
	if ctx.QiangKon {
		fans = append(fans, FanQiangKon)
	}
	if ctx.LastTile {
		if ctx.ZiMo {
			fans = append(fans, FanHuiChun)
		} else {
			fans = append(fans, FanLaoYue)
		}
	}
	return fans
}

// 番型名
const (
	FanPingHu          = "平胡"
	FanDuiDuiHu        = "对对胡"
	FanQingYiSe        = "清一色"
	FanQiDui           = "七对"
	FanLongQiDui       = "龙七对"
	FanQingQiDui       = "清七对"
	FanQingLongQiDui   = "清龙七对"
	FanQingDui         = "清对"
	FanJiangDui        = "将对"
	FanDaiYaoJiu       = "带幺九"
	FanQingYaoJiu      = "清幺九"
	FanJinGouDiao      = "金钩钓"
	FanJiangJinGouDiao = "将金钩钓"
	FanQingJinGouDiao  = "清金钩钓"
	FanShiBaLuoHan     = "十八罗汉"
	FanQingShiBaLuoHan = "清十八罗汉"
	FanMenQing         = "门清"
	FanDuanYaoJiu      = "断幺九"

	FanZiMo     = "自摸"
	FanKonHua   = "杠上花"
	FanKonPao   = "杠上炮"
	FanQiangKon = "抢杠胡"
	FanHuiChun  = "妙手回春"
	FanLaoYue   = "海底捞月"
)
