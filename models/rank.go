package models

type RankResult struct {
	OverallRank  int `json:"overall_rank"`
	CategoryRank int `json:"category_rank"`
	ShiftRank    int `json:"shift_rank"`
}
