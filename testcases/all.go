package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in exported file names.
var All = map[string][]TestCase{
	"axis":      axisCases,
	"diagonal":  diagonalCases,
	"precision": precisionCases,
	"long":      longCases,
	"stroke":    strokeCases,
	"curve":     curveCases,
	"subpath":   subpathCases,
	"ctm":       ctmCases,
	"dash":      dashCases,
}
