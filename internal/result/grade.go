package result

// GradeFor maps a density score to its qualitative grade.
func GradeFor(density float64) DensityGrade {
	switch {
	case density < 0.2:
		return GradeVapor
	case density < 0.4:
		return GradeThin
	case density < 0.6:
		return GradeAdequate
	case density < 0.8:
		return GradeDense
	default:
		return GradeCrystalline
	}
}
