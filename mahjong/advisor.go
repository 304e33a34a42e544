package mahjong

import (
	"math/bits"

	"github.com/topfreegames/pitaya/v3/pkg/logger"
)

// SuggestDiscard 推荐出牌，只接受摸牌后的手牌
// 优先级：定缺牌 > 防花猪退到两门 > 出牌后向听最小
func SuggestDiscard(h *Hand) (Tile, error) {
	if !h.isFullSize() {
		return TileNull, ErrMalformedHandSize
	}

	if tile := lowestVoidTile(h); tile != TileNull {
		logger.Log.Debugf("suggest discard void tile %s", tile.Name())
		return tile, nil
	}

	if tile := threeSuitEscape(h); tile != TileNull {
		logger.Log.Debugf("suggest discard %s to drop third suit", tile.Name())
		return tile, nil
	}

	return bestShantenDiscard(h)
}

// lowestVoidTile 定缺花色中点数最小的牌
func lowestVoidTile(h *Hand) Tile {
	if h.VoidColor < ColorBegin || h.VoidColor >= ColorEnd {
		return TileNull
	}
	base := int(h.VoidColor) * PointCount
	for p := range PointCount {
		if h.Counts[base+p] > 0 {
			return TileFromIndex(base + p)
		}
	}
	return TileNull
}

// threeSuitEscape 手上带三门时从张数最少且未被副露占住的一门先退
func threeSuitEscape(h *Hand) Tile {
	if bits.OnesCount(uint(h.colorMask())) < 3 {
		return TileNull
	}
	meldMask := groupColorMask(h.Groups)

	bestColor := ColorUndefined
	bestCount := 0
	for c := ColorBegin; c < ColorEnd; c++ {
		if meldMask&(1<<c) != 0 {
			continue
		}
		count := 0
		base := int(c) * PointCount
		for p := range PointCount {
			count += int(h.Counts[base+p])
		}
		if count == 0 {
			continue
		}
		if bestColor == ColorUndefined || count < bestCount {
			bestColor = c
			bestCount = count
		}
	}
	if bestColor == ColorUndefined {
		return TileNull
	}
	base := int(bestColor) * PointCount
	for p := range PointCount {
		if h.Counts[base+p] > 0 {
			return TileFromIndex(base + p)
		}
	}
	return TileNull
}

// bestShantenDiscard 逐张试打取向听最小，平手比听牌数再比下标
func bestShantenDiscard(h *Hand) (Tile, error) {
	best := TileNull
	bestStep := MaxStep + 1
	bestWaits := -1

	for i := range TileIndexCount {
		if h.Counts[i] == 0 {
			continue
		}
		h.Counts[i]--
		step, err := CalcShanten(h)
		if err != nil {
			h.Counts[i]++
			return TileNull, err
		}
		waits := len(WaitingTiles(h))
		h.Counts[i]++

		if step < bestStep || (step == bestStep && waits > bestWaits) {
			best = TileFromIndex(i)
			bestStep = step
			bestWaits = waits
		}
	}
	if best == TileNull {
		return TileNull, ErrMalformedHandSize
	}
	logger.Log.Debugf("suggest discard %s, shanten %d, %d waits", best.Name(), bestStep, bestWaits)
	return best, nil
}
