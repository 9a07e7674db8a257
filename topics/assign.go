package topics

import "sort"

// Assign distributes tokenized documents across k topics.
//
// The approximation alternates, for Options.Iterations passes, between
// averaging member documents' normalized term frequencies into a topic
// centroid and reassigning each document to its highest-affinity topic
// (dot product with the centroid, lowest index on ties). Document i
// starts in topic i mod k, so the whole procedure is deterministic.
//
// Contract of the result:
//   - Each topic's keyword weights are ranked descending and sum to ≤1
//     (the centroid sums to 1 exactly; truncation to TopKeywords only
//     removes mass).
//   - Each document's topic distribution sums to exactly 1; documents
//     without tokens get the uniform distribution.
//   - Relevant[t] lists documents whose weight on topic t exceeds
//     Options.RelevanceThreshold.
//
// Complexity: O(Iterations · docs · k · vocabulary).
func Assign(docs [][]string, k int, options ...Option) (Result, error) {
	if len(docs) == 0 {
		return Result{}, ErrNoDocs
	}
	if k <= 0 {
		return Result{}, ErrBadK
	}
	opts := DefaultOptions()
	for _, apply := range options {
		apply(&opts)
	}
	if opts.Iterations < 1 || opts.TopKeywords < 1 ||
		opts.RelevanceThreshold < 0 || opts.RelevanceThreshold >= 1 {
		return Result{}, ErrBadOptions
	}

	vocab, words := buildVocabulary(docs)
	tf := termFrequencies(docs, vocab)

	// Positional seeding keeps the run reproducible without an RNG.
	assign := make([]int, len(docs))
	for d := range assign {
		assign[d] = d % k
	}

	var centroids [][]float64
	for iter := 0; iter < opts.Iterations; iter++ {
		centroids = topicCentroids(tf, assign, k, len(words))

		changed := false
		for d, vec := range tf {
			best, bestDot := assign[d], 0.0
			for t := 0; t < k; t++ {
				if s := dot(vec, centroids[t]); s > bestDot {
					best, bestDot = t, s
				}
			}
			if bestDot > 0 && best != assign[d] {
				assign[d] = best
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	centroids = topicCentroids(tf, assign, k, len(words))

	out := Result{
		Topics:    make([]Topic, k),
		DocTopics: make([][]float64, len(docs)),
		Relevant:  make([][]int, k),
	}
	for t := 0; t < k; t++ {
		out.Topics[t] = Topic{Keywords: rankKeywords(centroids[t], words, opts.TopKeywords)}
	}
	for d, vec := range tf {
		out.DocTopics[d] = docDistribution(vec, centroids, k)
		for t, w := range out.DocTopics[d] {
			if w > opts.RelevanceThreshold {
				out.Relevant[t] = append(out.Relevant[t], d)
			}
		}
	}

	return out, nil
}

// buildVocabulary indexes words in first-appearance order.
func buildVocabulary(docs [][]string) (map[string]int, []string) {
	vocab := make(map[string]int)
	var words []string
	for _, doc := range docs {
		for _, w := range doc {
			if _, ok := vocab[w]; !ok {
				vocab[w] = len(words)
				words = append(words, w)
			}
		}
	}

	return vocab, words
}

// termFrequencies returns one unit-sum frequency vector per document
// (all-zero for empty documents).
func termFrequencies(docs [][]string, vocab map[string]int) [][]float64 {
	tf := make([][]float64, len(docs))
	for d, doc := range docs {
		vec := make([]float64, len(vocab))
		for _, w := range doc {
			vec[vocab[w]]++
		}
		if n := len(doc); n > 0 {
			for i := range vec {
				vec[i] /= float64(n)
			}
		}
		tf[d] = vec
	}

	return tf
}

// topicCentroids averages member frequency vectors; an empty topic
// yields the zero vector.
func topicCentroids(tf [][]float64, assign []int, k, vocabSize int) [][]float64 {
	centroids := make([][]float64, k)
	counts := make([]int, k)
	for t := range centroids {
		centroids[t] = make([]float64, vocabSize)
	}
	for d, vec := range tf {
		t := assign[d]
		counts[t]++
		for i, v := range vec {
			centroids[t][i] += v
		}
	}
	for t := range centroids {
		if counts[t] == 0 {
			continue
		}
		for i := range centroids[t] {
			centroids[t][i] /= float64(counts[t])
		}
	}

	return centroids
}

// rankKeywords sorts a centroid's positive entries by descending weight
// (word ascending on ties) and truncates to the cap.
func rankKeywords(centroid []float64, words []string, limit int) []Keyword {
	var kws []Keyword
	for i, w := range centroid {
		if w > 0 {
			kws = append(kws, Keyword{Word: words[i], Weight: w})
		}
	}
	sort.Slice(kws, func(i, j int) bool {
		if kws[i].Weight != kws[j].Weight {
			return kws[i].Weight > kws[j].Weight
		}

		return kws[i].Word < kws[j].Word
	})
	if len(kws) > limit {
		kws = kws[:limit]
	}

	return kws
}

// docDistribution turns per-topic affinities into a unit-sum row,
// uniform when every affinity is zero.
func docDistribution(vec []float64, centroids [][]float64, k int) []float64 {
	row := make([]float64, k)
	var sum float64
	for t := 0; t < k; t++ {
		row[t] = dot(vec, centroids[t])
		sum += row[t]
	}
	if sum == 0 {
		for t := range row {
			row[t] = 1 / float64(k)
		}

		return row
	}
	for t := range row {
		row[t] /= sum
	}

	return row
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}
