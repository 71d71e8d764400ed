package taxonomy

// seedTopics is the built-in keyword table covering the middle-school /
// test-prep curriculum. Keywords are matched as case-insensitive substrings.
var seedTopics = []Topic{
	{Name: "Fractions", Parent: DomainArithmetic, Keywords: []string{"fraction", "numerator", "denominator", "common denominator", "simplify", "mixed number"}},
	{Name: "Decimals", Parent: DomainArithmetic, Keywords: []string{"decimal", "place value", "tenths", "hundredths", "thousandths"}},
	{Name: "Percents", Parent: DomainArithmetic, Keywords: []string{"percent", "%", "percentage"}},
	{Name: "Integers", Parent: DomainArithmetic, Keywords: []string{"integer", "negative", "positive", "absolute value", "number line"}},
	{Name: "Ratios & Rates", Parent: DomainArithmetic, Keywords: []string{"ratio", "rate", "unit rate", "proportion", "scale"}},

	{Name: "Expressions", Parent: DomainAlgebra, Keywords: []string{"expression", "distribute", "combine like terms", "simplify expression"}},
	{Name: "Equations", Parent: DomainAlgebra, Keywords: []string{"equation", "solve for", "isolate", "variable", "x =", "y ="}},
	{Name: "Linear Equations", Parent: DomainAlgebra, Keywords: []string{"linear", "slope", "y-intercept", "mx+b", "rise over run"}},
	{Name: "Functions", Parent: DomainAlgebra, Keywords: []string{"function", "f(x)", "domain", "range", "input", "output"}},
	{Name: "Exponents & Radicals", Parent: DomainAlgebra, Keywords: []string{"exponent", "power", "square root", "radical", "scientific notation"}},
	{Name: "Quadratics", Parent: DomainAlgebra, Keywords: []string{"quadratic", "parabola", "vertex", "factor", "complete the square"}},

	{Name: "Angles", Parent: DomainGeometry, Keywords: []string{"angle", "vertical angles", "complementary", "supplementary", "parallel", "transversal"}},
	{Name: "Triangles", Parent: DomainGeometry, Keywords: []string{"triangle", "isosceles", "equilateral", "right triangle", "pythagorean", "similar", "congruent"}},
	{Name: "Circles", Parent: DomainGeometry, Keywords: []string{"circle", "radius", "diameter", "circumference", "arc", "chord", "tangent"}},
	{Name: "Area & Perimeter", Parent: DomainGeometry, Keywords: []string{"area", "perimeter", "volume", "surface area"}},
	{Name: "Coordinate Geometry", Parent: DomainGeometry, Keywords: []string{"coordinate", "graph", "slope", "distance formula", "midpoint"}},

	{Name: "Statistics", Parent: DomainData, Keywords: []string{"mean", "median", "mode", "range", "standard deviation", "box plot", "histogram"}},
	{Name: "Probability", Parent: DomainData, Keywords: []string{"probability", "chance", "likely", "outcome", "sample space"}},

	{Name: "Translation", Parent: DomainWordProblems, Keywords: []string{"word problem", "translate", "given", "find", "let", "represents"}},
}

// Default returns the built-in taxonomy.
func Default() *Taxonomy {
	return New(seedTopics)
}
