package service

import "math"

type ScoreConverterService interface {
	Percentage(scored, possible int) float64
}

type scoreConverterServiceImpl struct{}

func NewScoreConverterService() ScoreConverterService {
	return &scoreConverterServiceImpl{}
}

// Percentage rounds to two decimals. A quiz without questions scores 0.
func (s *scoreConverterServiceImpl) Percentage(scored, possible int) float64 {
	if possible <= 0 || scored <= 0 {
		return 0
	}
	if scored > possible {
		scored = possible
	}
	return math.Round(float64(scored)*10000/float64(possible)) / 100
}
