package model

import "strings"

// FeeTable содержит фиксированную стоимость доставки по районам.
type FeeTable map[string]float64

// NormalizeNeighborhood приводит название района к виду, используемому для поиска.
func NormalizeNeighborhood(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup ищет стоимость доставки в район без учета регистра.
func (t FeeTable) Lookup(neighborhood string) (float64, bool) {
	key := NormalizeNeighborhood(neighborhood)
	for name, fee := range t {
		if NormalizeNeighborhood(name) == key {
			return fee, true
		}
	}
	return 0, false
}
