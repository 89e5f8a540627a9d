package services

import "strconv"

// DisplayGrade renders the backend's numeric grade encoding: -1 Pre-K,
// 0 Kindergarten, 1..12 numeric, nil N/A.
func DisplayGrade(g *int) string {
	if g == nil {
		return "N/A"
	}
	switch *g {
	case -1:
		return "Pre-K"
	case 0:
		return "Kindergarten"
	default:
		return strconv.Itoa(*g)
	}
}

type GradeOption struct {
	Value int
	Label string
}

// GradeOptions is the intake form's grade dropdown.
func GradeOptions() []GradeOption {
	out := []GradeOption{
		{Value: -1, Label: "Pre-K"},
		{Value: 0, Label: "Kindergarten"},
	}
	for g := 1; g <= 12; g++ {
		out = append(out, GradeOption{Value: g, Label: strconv.Itoa(g)})
	}
	return out
}
