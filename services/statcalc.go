// services/statcalc.go
package services

// StatRange holds the realized min/max of one stat at level 100.
type StatRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// CalculateStatRange computes the level-100 floor (IV 0, no EVs, hindering
// nature) and ceiling (IV 31, 63 EV points, boosting nature) for a base stat.
// The intermediate floors must stay exactly as written — reordering the
// truncation changes outputs for some bases.
func CalculateStatRange(base int, isHP bool) StatRange {
	if isHP {
		min := (2*base*100)/100 + 100 + 10
		max := ((2*base + 31 + 63) * 100 / 100) + 100 + 10
		return StatRange{Min: min, Max: max}
	}
	min := int(float64((2*base*100)/100+5) * 0.9)
	max := int(float64((2*base+31+63)*100/100+5) * 1.1)
	return StatRange{Min: min, Max: max}
}
