// Package sentiment scores review text and buckets it into positive,
// negative and neutral counts.
package sentiment

// Bucket boundaries. Polarity strictly above PositiveThreshold is positive,
// strictly below NegativeThreshold is negative, anything else is neutral.
const (
	PositiveThreshold = 0.45
	NegativeThreshold = 0.0
)

// Classifier returns a polarity score, roughly in [-1, 1], for a piece of text.
type Classifier interface {
	Polarity(text string) float64
}

// ClassifierFunc adapts a plain function to the Classifier interface.
type ClassifierFunc func(text string) float64

func (f ClassifierFunc) Polarity(text string) float64 { return f(text) }

type Bucket int

const (
	Neutral Bucket = iota
	Positive
	Negative
)

func (b Bucket) String() string {
	switch b {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// BucketOf maps a polarity score to its bucket.
func BucketOf(polarity float64) Bucket {
	switch {
	case polarity > PositiveThreshold:
		return Positive
	case polarity < NegativeThreshold:
		return Negative
	default:
		return Neutral
	}
}

// Counts is the per-bucket breakdown of a set of reviews.
type Counts struct {
	Positive int
	Negative int
	Neutral  int
}

func (c Counts) Total() int {
	return c.Positive + c.Negative + c.Neutral
}

func (c *Counts) add(b Bucket) {
	switch b {
	case Positive:
		c.Positive++
	case Negative:
		c.Negative++
	default:
		c.Neutral++
	}
}

// Tally classifies every review and counts the buckets. The result always
// sums to len(reviews).
func Tally(classifier Classifier, reviews []string) Counts {
	var counts Counts
	for _, review := range reviews {
		counts.add(BucketOf(classifier.Polarity(review)))
	}
	return counts
}
