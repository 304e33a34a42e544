package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_sichuan/mahjong"
)

type tingCase struct {
	tiles string
	void  mahjong.EColor
	want  string // 期望听牌列表，逗号分隔
}

func Test_WaitingTiles(t *testing.T) {
	testCases := []tingCase{
		// 七对听一张：六对带单张9万
		{"1万,1万,2万,2万,3万,3万,5万,5万,6万,6万,7万,7万,9万", mahjong.ColorDot, "9万"},
		// 单钓5条
		{"1万,2万,3万,4万,5万,6万,7万,8万,9万,2条,2条,2条,5条", mahjong.ColorDot, "5条"},
		// 三面：11将加2到9连张听147
		{"1万,1万,2万,3万,4万,5万,6万,7万,8万,9万,4条,4条,4条", mahjong.ColorDot, "1万,4万,7万"},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			h := mustHand(t, tc.tiles, nil, tc.void)
			got := mahjong.WaitingTiles(h)
			want, err := mahjong.ParseTiles(tc.want)
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != len(want) {
				t.Fatalf("WaitingTiles(%s) = %s, want %s", tc.tiles, mahjong.TilesName(got), tc.want)
			}
			for j := range want {
				if got[j] != want[j] {
					t.Errorf("WaitingTiles(%s) = %s, want %s", tc.tiles, mahjong.TilesName(got), tc.want)
					break
				}
			}
		})
	}
}

func Test_WaitingTilesFullHand(t *testing.T) {
	h := mustHand(t, "1万,2万,3万,9万,9万,9万,4条,4条,5条,5条,6条,6条,7条,7条", nil, mahjong.ColorDot)
	if got := mahjong.WaitingTiles(h); got != nil {
		t.Errorf("14张手牌不应返回听牌，got %s", mahjong.TilesName(got))
	}
}

type shantenCase struct {
	tiles  string
	groups []mahjong.Group
	void   mahjong.EColor
	want   int
}

func Test_CalcShanten(t *testing.T) {
	ponDot9 := mahjong.NewPonGroup(mahjong.MakeTile(mahjong.ColorDot, 8), 1)

	testCases := []shantenCase{
		// 已胡
		{"1万,2万,3万,9万,9万,9万,4条,4条,5条,5条,6条,6条,7条,7条", nil, mahjong.ColorDot, 0},
		// 带副露已胡
		{"1万,2万,3万,5万,5万,5万,6万,6万,7万,8万,9万", []mahjong.Group{ponDot9}, mahjong.ColorBamboo, 0},
		// 七对差一张
		{"1万,1万,2万,2万,3万,3万,5万,5万,6万,6万,7万,7万,9万", nil, mahjong.ColorDot, 1},
		// 单钓
		{"1万,2万,3万,4万,5万,6万,7万,8万,9万,2条,2条,2条,5条", nil, mahjong.ColorDot, 1},
		// 定缺3张逐张计步，内层还差4张
		{"1万,2万,3万,4万,5万,5万,6万,7万,8万,9万,2筒,5筒,9筒", nil, mahjong.ColorDot, 7},
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			h := mustHand(t, tc.tiles, tc.groups, tc.void)
			got, err := mahjong.CalcShanten(h)
			if err != nil {
				t.Fatalf("CalcShanten(%s) error: %v", tc.tiles, err)
			}
			if got != tc.want {
				t.Errorf("CalcShanten(%s) = %d, want %d", tc.tiles, got, tc.want)
			}
		})
	}
}

func Test_CalcShantenMalformed(t *testing.T) {
	h := mustHand(t, "1万,2万,3万,4万,5万,6万,7万,8万,9万,1条,2条,3条", nil, mahjong.ColorDot)
	if _, err := mahjong.CalcShanten(h); err == nil {
		t.Error("3的整数倍张数应报错")
	}
}

// 向听大于0时必有一张进张使其减1，且任何一张最多减1
func Test_ShantenReachability(t *testing.T) {
	hands := []string{
		"1万,1万,2万,3万,5万,7万,8万,9万,1条,2条,3条,7条,8条",
		"1万,1万,3万,3万,5万,5万,7万,9万,1条,2条,4条,5条,7条",
		"2万,2万,2万,4万,6万,8万,9万,2条,3条,4条,6条,8条,8条",
	}
	for i, tiles := range hands {
		t.Run("case"+strconv.Itoa(i), func(t *testing.T) {
			h := mustHand(t, tiles, nil, mahjong.ColorDot)
			step, err := mahjong.CalcShanten(h)
			if err != nil {
				t.Fatalf("CalcShanten error: %v", err)
			}
			if step == 0 {
				t.Fatalf("样例手牌不应已胡: %s", tiles)
			}
			best := mahjong.MaxStep
			for j := 0; j < mahjong.TileIndexCount; j++ {
				if h.Counts[j] >= mahjong.MaxSameCount {
					continue
				}
				h.Counts[j]++
				next, err := mahjong.CalcShanten(h)
				h.Counts[j]--
				if err != nil {
					t.Fatalf("CalcShanten error: %v", err)
				}
				if next < step-1 {
					t.Errorf("摸 %s 使向听从 %d 跳到 %d", mahjong.TileFromIndex(j).Name(), step, next)
				}
				if next < best {
					best = next
				}
			}
			if best != step-1 {
				t.Errorf("最优进张后向听 = %d, want %d", best, step-1)
			}
		})
	}
}

// 摸到听的牌后向听必须降为0
func Test_ShantenDropsOnWait(t *testing.T) {
	h := mustHand(t, "1万,1万,2万,3万,4万,5万,6万,7万,8万,9万,4条,4条,4条", nil, mahjong.ColorDot)
	for _, tile := range mahjong.WaitingTiles(h) {
		h.Counts[tile.Index()]++
		step, err := mahjong.CalcShanten(h)
		if err != nil {
			t.Fatalf("CalcShanten error: %v", err)
		}
		if step != 0 {
			t.Errorf("摸 %s 后向听 = %d, want 0", tile.Name(), step)
		}
		h.Counts[tile.Index()]--
	}
}
