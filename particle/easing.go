package particle

// Back-overshoot constants for EaseOutBack.
const (
	easeBackC1 = 1.70158
	easeBackC3 = easeBackC1 + 1
)

// EaseOutQuad decelerates towards 1.
func EaseOutQuad(x float64) float64 {
	return 1 - (1-x)*(1-x)
}

// EaseInQuad accelerates away from 0.
func EaseInQuad(x float64) float64 {
	return x * x
}

// EaseOutBack overshoots past 1 before settling on it.
func EaseOutBack(x float64) float64 {
	d := x - 1
	return 1 + easeBackC3*d*d*d + easeBackC1*d*d
}
