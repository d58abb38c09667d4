package evaluation

// RecallAtK computes Recall@K: the fraction of relevant items found in the top-K
// retrieved results. A non-positive k considers every result. Returns 0.0 if
// relevant is empty.
func RecallAtK(relevant, retrieved []string, k int) float64 {
	if len(relevant) == 0 {
		return 0.0
	}

	relevantSet := toSet(relevant)
	found := make(map[string]struct{}, len(relevantSet))
	for _, r := range topK(retrieved, k) {
		if _, ok := relevantSet[r]; ok {
			found[r] = struct{}{}
		}
	}

	return float64(len(found)) / float64(len(relevantSet))
}

// MRRAtK computes the reciprocal rank of the first relevant item in the top-K
// retrieved results. Returns 0.0 if no relevant item is found.
func MRRAtK(relevant, retrieved []string, k int) float64 {
	if len(relevant) == 0 || len(retrieved) == 0 {
		return 0.0
	}

	relevantSet := toSet(relevant)
	for i, r := range topK(retrieved, k) {
		if _, ok := relevantSet[r]; ok {
			return 1.0 / float64(i+1)
		}
	}

	return 0.0
}

func topK(retrieved []string, k int) []string {
	if k > 0 && k < len(retrieved) {
		return retrieved[:k]
	}
	return retrieved
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
