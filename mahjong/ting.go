package mahjong

// MaxStep 不可达的向听上限
const MaxStep = 99

// WaitingTiles 听牌枚举：逐张试摸27种牌后查胡
// 手牌不是打出后的张数时返回空集
func WaitingTiles(h *Hand) []Tile {
	if !h.isRestSize() {
		return nil
	}
	var res []Tile
	for i := range TileIndexCount {
		if h.Counts[i] >= MaxSameCount {
			continue
		}
		h.Counts[i]++
		if IsWinningHand(h.Counts, h.Groups, h.VoidColor) {
			res = append(res, TileFromIndex(i))
		}
		h.Counts[i]--
	}
	return res
}

// CalcShanten 计算还差几张牌成胡，0表示已胡
// 定缺花色的牌每张都要先打掉，按一张一步计入
func CalcShanten(h *Hand) (int, error) {
	if total := h.tileTotal(); total%3 == 0 || total > TileCountInitBanker {
		return 0, ErrMalformedHandSize
	}

	penalty := h.voidTileCount()
	work := h.Counts
	if h.VoidColor >= ColorBegin && h.VoidColor < ColorEnd {
		base := int(h.VoidColor) * PointCount
		for p := range PointCount {
			work[base+p] = 0
		}
	}

	step := calcStepNormal(&work, NP4-len(h.Groups))
	if len(h.Groups) == 0 {
		if s := calcStepSevenPairs(&work); s < step {
			step = s
		}
	}
	return penalty + step, nil
}

// calcStepSevenPairs 七对向听：4张只记一对，第二对还要再摸
func calcStepSevenPairs(counts *HandCounts) int {
	pairs := 0
	for i := range TileIndexCount {
		if counts[i] >= 2 {
			pairs++
		}
	}
	if pairs >= 7 {
		return 0
	}
	return 7 - pairs
}

// stepState 平胡型搜索中已凑出的单元
type stepState struct {
	sets     int // 完整的刻子/顺子，含已有副露
	partials int // 搭子：对倒或两面/嵌张
	singles  int // 未入组的孤张
	hasPair  bool
}

// value 由已凑单元换算的差牌数
// 搭子补1张；缺的组有孤张打底补2张，凭空凑补3张；
// 缺将有剩余孤张补1张，否则补2张
func (s stepState) value(needGroups int) int {
	missing := needGroups - s.sets - s.partials
	if missing < 0 {
		missing = 0
	}
	seeds := min(missing, s.singles)
	step := s.partials + 2*missing + (missing - seeds)
	if !s.hasPair {
		if s.singles-seeds > 0 {
			step++
		} else {
			step += 2
		}
	}
	return step
}

// calcStepNormal 平胡型向听：穷举拆分取最小差牌数
func calcStepNormal(counts *HandCounts, needGroups int) int {
	best := MaxStep
	var walk func(i int, st stepState)
	walk = func(i int, st stepState) {
		for i < TileIndexCount && counts[i] == 0 {
			i++
		}
		if i == TileIndexCount {
			if v := st.value(needGroups); v < best {
				best = v
			}
			return
		}

		// 刻子
		if counts[i] >= 3 && st.sets < needGroups {
			counts[i] -= 3
			walk(i, stepState{st.sets + 1, st.partials, st.singles, st.hasPair})
			counts[i] += 3
		}
		// 顺子
		if st.sets < needGroups && i%PointCount <= PointCount-3 && counts[i+1] > 0 && counts[i+2] > 0 {
			counts[i]--
			counts[i+1]--
			counts[i+2]--
			walk(i, stepState{st.sets + 1, st.partials, st.singles, st.hasPair})
			counts[i]++
			counts[i+1]++
			counts[i+2]++
		}
		if counts[i] >= 2 {
			// 将
			if !st.hasPair {
				counts[i] -= 2
				walk(i, stepState{st.sets, st.partials, st.singles, true})
				counts[i] += 2
			}
			// 对倒搭子
			if st.sets+st.partials < needGroups {
				counts[i] -= 2
				walk(i, stepState{st.sets, st.partials + 1, st.singles, st.hasPair})
				counts[i] += 2
			}
		}
		// 两面/嵌张搭子
		if st.sets+st.partials < needGroups {
			for d := 1; d <= 2; d++ {
				if i%PointCount+d < PointCount && counts[i+d] > 0 {
					counts[i]--
					counts[i+d]--
					walk(i, stepState{st.sets, st.partials + 1, st.singles, st.hasPair})
					counts[i]++
					counts[i+d]++
				}
			}
		}
		// 孤张记入备用张，保证搜索不会走死
		counts[i]--
		walk(i, stepState{st.sets, st.partials, st.singles + 1, st.hasPair})
		counts[i]++
	}
	walk(0, stepState{})
	return best
}
