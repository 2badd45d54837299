package env

import (
	"os"
)

// PodName example: k8ssta-pricer-6868d88fbd-bz8zv
// Outside k8s PODNAME is usually unset, the hostname is the next best tag.
func PodName() string {
	if name := os.Getenv("PODNAME"); name != "" {
		return name
	}
	return os.Getenv("HOSTNAME")
}
