// Package textutil provides small generic helpers for building user-facing
// text, such as conditional selection and count-aware pluralization.
package textutil
