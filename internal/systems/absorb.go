package systems

import "colony-sim/internal/domain"

// Absorb переносит всех агентов из src в конец ростера dst.
// Перенос целиком: ни один агент не остается в двух ростерах и не теряется.
func Absorb(dst, src *domain.Colony) int {
	if dst == src {
		return 0
	}
	agents := src.TakeRoster()
	for _, a := range agents {
		dst.AddAgent(a)
	}
	return len(agents)
}
