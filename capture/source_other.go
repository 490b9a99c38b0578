//go:build !windows && !linux && !freebsd

package capture

func NewDesktop() (Desktop, error) {
	return nil, ErrUnsupported
}
