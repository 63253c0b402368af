package config

import "os"

func IsDebug() bool {
	return os.Getenv("UNIADVISOR_DEBUG") == "1"
}
