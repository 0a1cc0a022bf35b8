package locator

import (
	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint hashes locators in order, one per line.
func Fingerprint(locators []Locator) (uint64, error) {
	h, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	for _, loc := range locators {
		if _, err = h.Write([]byte(loc)); err != nil {
			return 0, err
		}
		if _, err = h.Write([]byte{'\n'}); err != nil {
			return 0, err
		}
	}
	return h.Sum64(), nil
}
