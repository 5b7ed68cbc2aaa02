package bench

// DefaultVersionOrder is the facet order of the benchmarked implementations.
var DefaultVersionOrder = []string{
	"Original",
	"V1_EarlyReturn",
	"V2_BitOps_",
	"V4_Precalculation",
}

// FacetOrder returns the distinct versions of pp. Versions listed in order
// come first, in list order. Others follow in order of first appearance.
func FacetOrder(pp []Point, order []string) []string {
	present := make(map[string]bool)
	var unlisted []string
	listed := make(map[string]bool, len(order))
	for _, v := range order {
		listed[v] = true
	}
	for _, p := range pp {
		if present[p.Version] {
			continue
		}
		present[p.Version] = true
		if !listed[p.Version] {
			unlisted = append(unlisted, p.Version)
		}
	}
	var facets []string
	for _, v := range order {
		if present[v] {
			facets = append(facets, v)
			present[v] = false // skip duplicates in order
		}
	}
	return append(facets, unlisted...)
}

// SourceOrder returns the distinct source labels of pp in order of first appearance.
func SourceOrder(pp []Point) []string {
	seen := make(map[string]bool)
	var labels []string
	for _, p := range pp {
		if !seen[p.Source] {
			seen[p.Source] = true
			labels = append(labels, p.Source)
		}
	}
	return labels
}
