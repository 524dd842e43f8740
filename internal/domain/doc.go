// Package domain defines core data models, contracts and error values shared
// across pairwise. It contains plain types and interfaces only.
package domain
