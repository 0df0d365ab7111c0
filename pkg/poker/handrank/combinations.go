package handrank

// fiveCardSubsets generates the indexes of every five-card subset of n cards.
// The generation is iterative: the index vector starts at {0,1,2,3,4} and is
// advanced odometer-style until the final combination is reached.
func fiveCardSubsets(n int) [][handSize]int {
	if n < handSize {
		return nil
	}

	var idx [handSize]int
	for i := range idx {
		idx[i] = i
	}

	subsets := make([][handSize]int, 0)
	for {
		subsets = append(subsets, idx)

		// find the rightmost index that can still advance
		i := handSize - 1
		for i >= 0 && idx[i] == n-handSize+i {
			i--
		}

		if i < 0 {
			return subsets
		}

		idx[i]++
		for j := i + 1; j < handSize; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
