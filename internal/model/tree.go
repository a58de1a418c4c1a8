package model

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// node is one node of a regression tree. Leaves carry the mean target of
// the training rows that reached them.
type node struct {
	leaf      bool
	value     float64
	feature   int
	threshold float64
	left      *node
	right     *node
}

// buildNode grows a tree over the rows in idx. idx may contain duplicates
// (bootstrap sampling). Splits minimize the summed squared error of the
// two children; nodes with no variance or no valid split become leaves.
func buildNode(x [][]float64, y []float64, idx []int) *node {
	targets := make([]float64, len(idx))
	for i, row := range idx {
		targets[i] = y[row]
	}
	n := &node{leaf: true, value: stat.Mean(targets, nil)}

	if len(idx) < 2 || stat.Variance(targets, nil) == 0 {
		return n
	}

	feature, threshold, left, right, ok := bestSplit(x, y, idx)
	if !ok {
		return n
	}

	n.leaf = false
	n.feature = feature
	n.threshold = threshold
	n.left = buildNode(x, y, left)
	n.right = buildNode(x, y, right)
	return n
}

func (n *node) predict(features []float64) float64 {
	for !n.leaf {
		if features[n.feature] <= n.threshold {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.value
}

// bestSplit scans every feature and every adjacent-value midpoint for the
// split with the lowest child SSE. Returns ok=false when no feature admits
// a valid split (all values tied).
func bestSplit(x [][]float64, y []float64, idx []int) (feature int, threshold float64, left, right []int, ok bool) {
	dims := len(x[idx[0]])

	bestFeature := -1
	bestScore := 0.0
	bestThreshold := 0.0
	bestK := 0
	var bestOrder []int

	order := make([]int, len(idx))
	for f := 0; f < dims; f++ {
		copy(order, idx)
		sort.SliceStable(order, func(a, b int) bool {
			return x[order[a]][f] < x[order[b]][f]
		})

		// Prefix sums let each candidate split be scored in O(1).
		var leftSum, leftSq float64
		var totalSum, totalSq float64
		for _, row := range order {
			totalSum += y[row]
			totalSq += y[row] * y[row]
		}

		for k := 1; k < len(order); k++ {
			v := y[order[k-1]]
			leftSum += v
			leftSq += v * v

			lo, hi := x[order[k-1]][f], x[order[k]][f]
			if lo == hi {
				continue
			}

			leftN := float64(k)
			rightN := float64(len(order) - k)
			leftSSE := leftSq - leftSum*leftSum/leftN
			rightSum := totalSum - leftSum
			rightSSE := (totalSq - leftSq) - rightSum*rightSum/rightN
			score := leftSSE + rightSSE

			if bestFeature == -1 || score < bestScore {
				bestFeature = f
				bestScore = score
				bestThreshold = (lo + hi) / 2
				bestK = k
				bestOrder = append(bestOrder[:0], order...)
			}
		}
	}

	if bestFeature == -1 {
		return 0, 0, nil, nil, false
	}
	return bestFeature, bestThreshold, bestOrder[:bestK], bestOrder[bestK:], true
}
