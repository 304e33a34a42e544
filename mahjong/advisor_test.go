package mahjong_test

import (
	"errors"
	"testing"

	"github.com/kevin-chtw/tw_sichuan/mahjong"
)

func Test_SuggestDiscardVoidFirst(t *testing.T) {
	h := mustHand(t, "1万,2万,3万,4万,5万,6万,5条,6条,7条,8条,9条,7筒,2筒,2筒", nil, mahjong.ColorDot)
	tile, err := mahjong.SuggestDiscard(h)
	if err != nil {
		t.Fatalf("SuggestDiscard error: %v", err)
	}
	if want := mahjong.MakeTile(mahjong.ColorDot, 1); tile != want {
		t.Errorf("SuggestDiscard = %s, want %s", tile.Name(), want.Name())
	}
}

func Test_SuggestDiscardThirdSuit(t *testing.T) {
	h := mustHand(t, "1万,2万,3万,4万,5万,6万,7万,8万,9万,1条,2条,3条,5筒,5筒", nil, mahjong.ColorUndefined)
	tile, err := mahjong.SuggestDiscard(h)
	if err != nil {
		t.Fatalf("SuggestDiscard error: %v", err)
	}
	if tile.Color() != mahjong.ColorDot {
		t.Errorf("SuggestDiscard = %s, want dot suit", tile.Name())
	}
}

// 副露占住的一门不能退
func Test_SuggestDiscardThirdSuitMeld(t *testing.T) {
	pon := mahjong.NewPonGroup(mahjong.MakeTile(mahjong.ColorDot, 4), 1)
	h := mustHand(t, "1万,2万,3万,4万,5万,6万,7万,8万,9万,1条,2条", []mahjong.Group{pon}, mahjong.ColorUndefined)
	tile, err := mahjong.SuggestDiscard(h)
	if err != nil {
		t.Fatalf("SuggestDiscard error: %v", err)
	}
	if tile.Color() != mahjong.ColorBamboo {
		t.Errorf("SuggestDiscard = %s, want bamboo suit", tile.Name())
	}
}

func Test_SuggestDiscardBestShanten(t *testing.T) {
	h := mustHand(t, "1万,1万,2万,3万,4万,5万,6万,7万,8万,9万,4条,4条,4条,9条", nil, mahjong.ColorDot)
	tile, err := mahjong.SuggestDiscard(h)
	if err != nil {
		t.Fatalf("SuggestDiscard error: %v", err)
	}
	// 打9条进三面听，打1万只单钓
	if want := mahjong.MakeTile(mahjong.ColorBamboo, 8); tile != want {
		t.Errorf("SuggestDiscard = %s, want %s", tile.Name(), want.Name())
	}
}

func Test_SuggestDiscardRestSize(t *testing.T) {
	h := mustHand(t, "1万,2万,3万,4万,5万,6万,7万,8万,9万,1条,2条,3条,5条", nil, mahjong.ColorDot)
	if _, err := mahjong.SuggestDiscard(h); !errors.Is(err, mahjong.ErrMalformedHandSize) {
		t.Errorf("error = %v, want ErrMalformedHandSize", err)
	}
}
