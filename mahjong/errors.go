package mahjong

import "errors"

var (
	// ErrInvalidTileFormat 牌名无法解析或牌值非法
	ErrInvalidTileFormat = errors.New("mahjong: invalid tile format")
	// ErrTooManyCopies 单次输入中同一张牌超过4张
	ErrTooManyCopies = errors.New("mahjong: more than four copies of one tile")
	// ErrMalformedHandSize 手牌张数与所需操作不符
	ErrMalformedHandSize = errors.New("mahjong: malformed hand size")
)
