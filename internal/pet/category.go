package pet

// Category is the presentation-facing look of the pet, driven only by the
// weekly step total.
type Category string

const (
	CategorySad      Category = "sad"
	CategoryNormal   Category = "normal"
	CategoryCheerful Category = "cheerful"
)

// CategoryFor classifies a weekly total. Both bounds are exclusive: a total
// equal to sadBelow or cheerfulAbove is normal.
func CategoryFor(weeklyTotal, sadBelow, cheerfulAbove int) Category {
	switch {
	case weeklyTotal < sadBelow:
		return CategorySad
	case weeklyTotal > cheerfulAbove:
		return CategoryCheerful
	default:
		return CategoryNormal
	}
}
