package mahjong

import "math/bits"

// CheckHuStyle 判定胡牌型：先查七对再查平胡型
// 定缺花色未出完或花色超过两门直接不胡
func CheckHuStyle(counts HandCounts, groups []Group, voidColor EColor) EHandStyle {
	mask := counts.colorMask() | groupColorMask(groups)
	if bits.OnesCount(uint(mask)) > 2 {
		return HandNone
	}
	if voidColor >= ColorBegin && voidColor < ColorEnd && mask&(1<<voidColor) != 0 {
		return HandNone
	}

	if len(groups) == 0 && isSevenPairs(&counts) {
		return HandSevenPairs
	}

	work := counts
	if decompose(&work, NP4-len(groups), false) {
		return HandNormal
	}
	return HandNone
}

// IsWinningHand 判定是否胡牌
func IsWinningHand(counts HandCounts, groups []Group, voidColor EColor) bool {
	return CheckHuStyle(counts, groups, voidColor) != HandNone
}

// 七对：门清限定，每种牌2或4张，4张记两对
func isSevenPairs(counts *HandCounts) bool {
	pairs := 0
	for i := range TileIndexCount {
		switch counts[i] {
		case 0:
		case 2, 4:
			pairs += int(counts[i]) / 2
		default:
			return false
		}
	}
	return pairs == 7
}

// decompose 将计数数组拆成 needGroups 组刻子/顺子加一对将
// 每层取最小下标的牌依次试刻子、将、顺子，失败回退，任一分支成功即可
func decompose(counts *HandCounts, needGroups int, hasPair bool) bool {
	i := 0
	for i < TileIndexCount && counts[i] == 0 {
		i++
	}
	if i == TileIndexCount {
		return needGroups == 0 && hasPair
	}

	if counts[i] >= 3 && needGroups > 0 {
		counts[i] -= 3
		if decompose(counts, needGroups-1, hasPair) {
			counts[i] += 3
			return true
		}
		counts[i] += 3
	}

	if counts[i] >= 2 && !hasPair {
		counts[i] -= 2
		if decompose(counts, needGroups, true) {
			counts[i] += 2
			return true
		}
		counts[i] += 2
	}

	// 顺子不可跨花色，8、9点不能做顺子起点
	if needGroups > 0 && i%PointCount <= PointCount-3 && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		if decompose(counts, needGroups-1, hasPair) {
			counts[i]++
			counts[i+1]++
			counts[i+2]++
			return true
		}
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}

	return false
}

// decomposeAllTriplets 对对胡判定：去一对将后全部是刻子
func decomposeAllTriplets(counts *HandCounts) bool {
	pairIndex := -1
	for i := range TileIndexCount {
		switch counts[i] % 3 {
		case 0:
		case 2:
			if pairIndex >= 0 {
				return false
			}
			pairIndex = i
		default:
			return false
		}
	}
	return pairIndex >= 0
}

// decomposeAllTerminal 带幺九判定：每组及将都含1或9
// 顺子只可能是123/789，刻子与将必须是幺九牌
func decomposeAllTerminal(counts *HandCounts, needGroups int, hasPair bool) bool {
	i := 0
	for i < TileIndexCount && counts[i] == 0 {
		i++
	}
	if i == TileIndexCount {
		return needGroups == 0 && hasPair
	}
	p := i % PointCount

	if counts[i] >= 3 && needGroups > 0 && (p == 0 || p == PointCount-1) {
		counts[i] -= 3
		if decomposeAllTerminal(counts, needGroups-1, hasPair) {
			counts[i] += 3
			return true
		}
		counts[i] += 3
	}

	if counts[i] >= 2 && !hasPair && (p == 0 || p == PointCount-1) {
		counts[i] -= 2
		if decomposeAllTerminal(counts, needGroups, true) {
			counts[i] += 2
			return true
		}
		counts[i] += 2
	}

	if needGroups > 0 && (p == 0 || p == PointCount-3) && counts[i+1] > 0 && counts[i+2] > 0 {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		if decomposeAllTerminal(counts, needGroups-1, hasPair) {
			counts[i]++
			counts[i+1]++
			counts[i+2]++
			return true
		}
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}

	return false
}
