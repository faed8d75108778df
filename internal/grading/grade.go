// Package grading maps scores to letter grades and grade points.
package grading

import (
	"math"

	"github.com/stemsi/unigrade-backend/internal/model"
)

// Score bounds applied to every externally supplied theory or lab score.
// The nominal 70/30 split between theory and lab is advisory only.
const (
	MinScore = 0.0
	MaxScore = 100.0
)

// Grade is a letter grade and its grade point.
type Grade struct {
	Letter string  `json:"letter"`
	Point  float64 `json:"point"`
}

// Failing is the grade for any total below the lowest passing band.
var Failing = Grade{Letter: "F", Point: 0.0}

// bands are ordered from the highest threshold down; each lower bound is inclusive.
var bands = []struct {
	min   float64
	grade Grade
}{
	{80, Grade{"A+", 4.00}},
	{75, Grade{"A", 3.75}},
	{70, Grade{"A-", 3.50}},
	{65, Grade{"B+", 3.25}},
	{60, Grade{"B", 3.00}},
	{55, Grade{"B-", 2.75}},
	{50, Grade{"C+", 2.50}},
	{45, Grade{"C", 2.25}},
	{40, Grade{"D", 2.00}},
}

// Calculate returns the grade for a total. Any value is accepted; totals below
// 40 (negative included) fall through to F.
func Calculate(total float64) Grade {
	for _, b := range bands {
		if total >= b.min {
			return b.grade
		}
	}
	return Failing
}

// ClampScore limits a raw score to [MinScore, MaxScore]. NaN is treated as 0.
func ClampScore(v float64) float64 {
	if math.IsNaN(v) {
		return MinScore
	}
	return math.Min(math.Max(v, MinScore), MaxScore)
}

// Preview clamps a score pair and grades its total.
func Preview(theory, lab float64) model.GradePreview {
	theory, lab = ClampScore(theory), ClampScore(lab)
	total := theory + lab
	g := Calculate(total)
	return model.GradePreview{
		Theory:      theory,
		Lab:         lab,
		Total:       total,
		GradeLetter: g.Letter,
		GradePoint:  g.Point,
	}
}

// Recompute returns m with clamped scores and total, letter and point derived
// from them. Every other field is left untouched.
func Recompute(m model.MarkRecord) model.MarkRecord {
	p := Preview(m.Theory, m.Lab)
	m.Theory = p.Theory
	m.Lab = p.Lab
	m.Total = p.Total
	m.GradeLetter = p.GradeLetter
	m.GradePoint = p.GradePoint
	return m
}
