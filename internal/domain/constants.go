package domain

// Business validation constants
const (
	MinAdults   = 1
	MinChildren = 0
	MinGuestAge = 1
	MaxGuestAge = 120
)

// Reservation code generation
const (
	// CodeAlphabet символы случайного суффикса кода брони
	CodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// CodeSuffixLength длина случайного суффикса
	CodeSuffixLength = 6
	// CodePrefixFormat формат префикса: RES-<год><месяц>
	CodePrefixFormat = "RES-200601"
	// MaxCodeAttempts предел попыток генерации при коллизиях
	MaxCodeAttempts = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
