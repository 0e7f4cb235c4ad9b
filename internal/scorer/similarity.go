package scorer

import "math"

// Vector returns the TF-IDF weighted term vector of corpus document i.
// The IDF here uses the smoothed non-negative form
// ln((n+1)/(df+1)) so vectors are usable for cosine similarity.
func (c *Corpus) Vector(i int) map[string]float64 {
	if i < 0 || i >= c.docCount {
		return nil
	}

	vec := make(map[string]float64, len(c.termFreqs[i]))
	for term, tf := range c.termFreqs[i] {
		vec[term] = tf * c.smoothedIDF(term)
	}
	return vec
}

// Similarity computes the cosine similarity between corpus documents i
// and j, in [0, 1]. Documents with no tokens have similarity 0 to
// everything, including themselves.
func (c *Corpus) Similarity(i, j int) float64 {
	if i < 0 || i >= c.docCount || j < 0 || j >= c.docCount {
		return 0
	}

	tfI, tfJ := c.termFreqs[i], c.termFreqs[j]

	var dot, normI, normJ float64
	for term, fi := range tfI {
		idf := c.smoothedIDF(term)
		vi := fi * idf
		normI += vi * vi

		if fj, ok := tfJ[term]; ok {
			dot += vi * fj * idf
		}
	}
	for term, fj := range tfJ {
		vj := fj * c.smoothedIDF(term)
		normJ += vj * vj
	}

	if normI == 0 || normJ == 0 {
		return 0
	}
	return dot / (math.Sqrt(normI) * math.Sqrt(normJ))
}

func (c *Corpus) smoothedIDF(term string) float64 {
	return math.Log(float64(c.docCount+1) / float64(c.docFreq[term]+1))
}
