// Package card defines the card ranks tracked by the tally board.
package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank 定义点数
type Rank int

const (
	Rank3 Rank = iota + 3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
	Rank9
	Rank10
	RankJ // Jack
	RankQ // Queen
	RankK // King
	RankA // Ace
	Rank2
)

// RowCount 记牌板的行数，每个点数一行
const RowCount = 13

// rankNames 牌面值字符串映射表
var rankNames = map[Rank]string{
	Rank3:  "3",
	Rank4:  "4",
	Rank5:  "5",
	Rank6:  "6",
	Rank7:  "7",
	Rank8:  "8",
	Rank9:  "9",
	Rank10: "10",
	RankJ:  "J",
	RankQ:  "Q",
	RankK:  "K",
	RankA:  "A",
	Rank2:  "2",
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return strconv.Itoa(int(r))
}

// Valid reports whether r is one of the 13 tracked ranks.
func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

// labelToRank 用于快速查找标签对应的 Rank，T 是 10 的简写
var labelToRank = map[string]Rank{
	"3":  Rank3,
	"4":  Rank4,
	"5":  Rank5,
	"6":  Rank6,
	"7":  Rank7,
	"8":  Rank8,
	"9":  Rank9,
	"10": Rank10,
	"T":  Rank10,
	"J":  RankJ,
	"Q":  RankQ,
	"K":  RankK,
	"A":  RankA,
	"2":  Rank2,
}

// RankFromLabel parses a rank label such as "A", "10" or "t".
func RankFromLabel(label string) (Rank, error) {
	if rank, ok := labelToRank[strings.ToUpper(strings.TrimSpace(label))]; ok {
		return rank, nil
	}
	return -1, fmt.Errorf("无法识别的点数: %q", label)
}

// DisplayOrder 记牌板从上到下的行顺序
var DisplayOrder = [RowCount]Rank{Rank2, RankA, RankK, RankQ, RankJ, Rank10, Rank9, Rank8, Rank7, Rank6, Rank5, Rank4, Rank3}

// RowOf returns the board row that displays rank, or -1.
func RowOf(rank Rank) int {
	for i, r := range DisplayOrder {
		if r == rank {
			return i
		}
	}
	return -1
}
