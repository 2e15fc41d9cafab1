// Package utils holds small data structures shared by the engine
// implementations.
package utils

// Candidate is a bucket-queue entry: Rank selects the bucket (lower
// pops first), Pos breaks ties toward the leftmost position.
type Candidate struct {
	Rank int
	Pos  int
	// Payload carries engine-specific data (arena indices, a score
	// witness, ...) the bucket queue itself never inspects.
	Payload any
}

// BucketQueue is a min-priority queue for scores bounded to a small
// known range (a vocabulary piece index). Pop scans forward from the
// lowest non-empty rank instead of sifting a heap; Push does a linear
// insertion into its rank's bucket and may move that scan back down.
type BucketQueue struct {
	buckets    [][]Candidate
	current    int
	totalCount int
}

// NewBucketQueue returns an empty queue sized to hold ranks in
// [0, maxRank].
func NewBucketQueue(maxRank int) *BucketQueue {
	if maxRank < 0 {
		maxRank = 0
	}
	return &BucketQueue{buckets: make([][]Candidate, maxRank+1)}
}

// Len reports the number of queued candidates.
func (bq *BucketQueue) Len() int {
	return bq.totalCount
}

// Push inserts c into its rank's bucket, keeping the bucket sorted by
// Pos so Pop's tiebreak (leftmost position wins) holds within a rank.
func (bq *BucketQueue) Push(c Candidate) {
	if c.Rank >= len(bq.buckets) {
		grown := make([][]Candidate, c.Rank+1)
		copy(grown, bq.buckets)
		bq.buckets = grown
	}

	bucket := bq.buckets[c.Rank]
	insertPos := len(bucket)
	for i, existing := range bucket {
		if existing.Pos >= c.Pos {
			insertPos = i
			break
		}
	}

	bucket = append(bucket, Candidate{})
	copy(bucket[insertPos+1:], bucket[insertPos:])
	bucket[insertPos] = c

	bq.buckets[c.Rank] = bucket
	bq.totalCount++
	if c.Rank < bq.current {
		bq.current = c.Rank
	}
}

// Pop removes and returns the lowest-rank, leftmost-position
// candidate, or (zero, false) if the queue is empty.
func (bq *BucketQueue) Pop() (Candidate, bool) {
	for bq.current < len(bq.buckets) && len(bq.buckets[bq.current]) == 0 {
		bq.current++
	}
	if bq.current >= len(bq.buckets) {
		return Candidate{}, false
	}

	bucket := bq.buckets[bq.current]
	c := bucket[0]
	bq.buckets[bq.current] = bucket[1:]
	bq.totalCount--
	return c, true
}
