//go:build !darwin && !linux && !windows

package sound

// candidatesFor has nothing to offer on unsupported platforms; the bell is used
func candidatesFor(eventType string) []command {
	return nil
}
