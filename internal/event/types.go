package event

const (
	Resized EventType = "Resized" // host surface changed size, Data is Size
	Bloomed EventType = "Bloomed" // reveal triggered, Data is Point (burst origin)
	Settled EventType = "Settled" // confetti cleared after the burst
)

// Size is the payload of Resized.
type Size struct {
	Width, Height int
}

// Point is the payload of Bloomed.
type Point struct {
	X, Y float64
}
