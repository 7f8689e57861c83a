package modes

import "fmt"

type Mode uint8

const (
	ModeProduction Mode = iota + 1
	// ModeDevelopment disables outbound proxies and enables debug logging.
	ModeDevelopment
)

func (m Mode) String() string {
	switch m {
	case ModeProduction:
		return "production"
	case ModeDevelopment:
		return "development"
	}
	return fmt.Sprintf("Mode(%d)", m)
}
